package analyzer

import (
	"strings"
	"testing"
	"time"

	"github.com/solvetrace/solvetrace/internal/store"
)

func event(eventType, problemID, title, lang, code string, at time.Time) store.CodingEvent {
	return store.CodingEvent{
		UserID:       "u1",
		EventType:    eventType,
		ProblemID:    problemID,
		ProblemTitle: title,
		Language:     lang,
		SourceCode:   code,
		CreatedAt:    at,
	}
}

func TestBuildProfile_Counts(t *testing.T) {
	now := time.Now()
	events := []store.CodingEvent{
		event(store.EventCodeRun, "p1", "Two Sum Array", "go", "", now),
		event(store.EventCodeRun, "p1", "Two Sum Array", "go", "", now),
		event(store.EventCodeSubmit, "p1", "Two Sum Array", "go", "", now),
		event(store.EventCodeRun, "p2", "Binary Tree Paths", "python", "", now),
		event(store.EventCodeSubmit, "", "Reverse String", "go", "", now),
	}

	p := BuildProfile("u1", 30, events)

	if p.UserID != "u1" || p.PeriodDays != 30 {
		t.Errorf("identity fields = %q/%d, want u1/30", p.UserID, p.PeriodDays)
	}
	if p.TotalRuns != 3 {
		t.Errorf("TotalRuns = %d, want 3", p.TotalRuns)
	}
	if p.TotalSubmits != 2 {
		t.Errorf("TotalSubmits = %d, want 2", p.TotalSubmits)
	}
	// Empty problem IDs do not create a distinct problem.
	if p.TotalProblems != 2 {
		t.Errorf("TotalProblems = %d, want 2", p.TotalProblems)
	}
}

func TestBuildProfile_Languages(t *testing.T) {
	now := time.Now()
	events := []store.CodingEvent{
		event(store.EventCodeRun, "p1", "A", "python", "", now),
		event(store.EventCodeRun, "p2", "B", "go", "", now),
		event(store.EventCodeRun, "p3", "C", "go", "", now),
		event(store.EventCodeRun, "p4", "D", "", "", now),
		event(store.EventCodeRun, "p5", "E", "unknown", "", now),
	}

	p := BuildProfile("u1", 30, events)

	want := []string{"go", "python"}
	if len(p.LanguagesUsed) != len(want) {
		t.Fatalf("LanguagesUsed = %v, want %v", p.LanguagesUsed, want)
	}
	for i := range want {
		if p.LanguagesUsed[i] != want[i] {
			t.Errorf("LanguagesUsed[%d] = %q, want %q", i, p.LanguagesUsed[i], want[i])
		}
	}
	if p.MostUsedLanguage != "go" {
		t.Errorf("MostUsedLanguage = %q, want go", p.MostUsedLanguage)
	}
}

func TestBuildProfile_MostUsedLanguageTieBreak(t *testing.T) {
	now := time.Now()
	events := []store.CodingEvent{
		event(store.EventCodeRun, "p1", "A", "python", "", now),
		event(store.EventCodeRun, "p2", "B", "go", "", now),
	}

	p := BuildProfile("u1", 30, events)
	if p.MostUsedLanguage != "go" {
		t.Errorf("tie-break MostUsedLanguage = %q, want go (alphabetical)", p.MostUsedLanguage)
	}
}

func TestBuildProfile_NoLanguages(t *testing.T) {
	now := time.Now()
	events := []store.CodingEvent{
		event(store.EventCodeRun, "p1", "A", "", "", now),
	}

	p := BuildProfile("u1", 30, events)
	if p.MostUsedLanguage != "unknown" {
		t.Errorf("MostUsedLanguage = %q, want unknown", p.MostUsedLanguage)
	}
	if len(p.LanguagesUsed) != 0 {
		t.Errorf("LanguagesUsed = %v, want empty", p.LanguagesUsed)
	}
}

func TestBuildProfile_Categories(t *testing.T) {
	now := time.Now()
	events := []store.CodingEvent{
		event(store.EventCodeRun, "p1", "Two Sum Array", "go", "", now),
		event(store.EventCodeRun, "p2", "Max Subarray", "go", "", now),
		event(store.EventCodeRun, "p3", "Binary Tree Paths", "go", "", now),
		event(store.EventCodeRun, "p4", "", "go", "", now), // untitled still counts above
	}

	p := BuildProfile("u1", 30, events)

	if p.ProblemCategories["Array"] != 2 {
		t.Errorf("Array count = %d, want 2", p.ProblemCategories["Array"])
	}
	if p.ProblemCategories["Tree"] != 1 {
		t.Errorf("Tree count = %d, want 1", p.ProblemCategories["Tree"])
	}
	if p.TotalRuns != 4 {
		t.Errorf("TotalRuns = %d, want 4 (untitled event still counted)", p.TotalRuns)
	}
}

func TestBuildProfile_Empty(t *testing.T) {
	p := BuildProfile("u1", 7, nil)
	if p.TotalRuns != 0 || p.TotalSubmits != 0 || p.TotalProblems != 0 {
		t.Errorf("empty events produced nonzero counts: %+v", p)
	}
}

func TestExtractRecentSamples(t *testing.T) {
	base := time.Now()
	long := strings.Repeat("x", 60)

	var events []store.CodingEvent
	for i := 0; i < 8; i++ {
		events = append(events, event(store.EventCodeRun, "p1", "Two Sum", "go",
			long, base.Add(time.Duration(i)*time.Minute)))
	}
	// Short snippets are skipped.
	events = append(events, event(store.EventCodeRun, "p1", "Two Sum", "go",
		"short", base.Add(time.Hour)))

	samples := extractRecentSamples(events)
	if len(samples) != maxCodeSamples {
		t.Fatalf("got %d samples, want %d", len(samples), maxCodeSamples)
	}
	for _, s := range samples {
		if strings.Contains(s, "short") {
			t.Error("short snippet should have been filtered out")
		}
	}
}

func TestFormatCodeSample(t *testing.T) {
	e := event(store.EventCodeRun, "p1", "Two Sum", "go", "func main() {}", time.Now())
	got := formatCodeSample(e)

	if !strings.Contains(got, "Problem: Two Sum") {
		t.Errorf("missing problem line: %q", got)
	}
	if !strings.Contains(got, "Language: go") {
		t.Errorf("missing language line: %q", got)
	}
	if !strings.HasSuffix(got, "---") {
		t.Errorf("missing terminator: %q", got)
	}
}

func TestFormatCodeSample_Defaults(t *testing.T) {
	e := event(store.EventCodeRun, "p1", "", "", "code", time.Now())
	got := formatCodeSample(e)

	if !strings.Contains(got, "Unknown Problem") {
		t.Errorf("missing title default: %q", got)
	}
	if !strings.Contains(got, "Language: unknown") {
		t.Errorf("missing language default: %q", got)
	}
}

func TestFormatCodeSample_Truncation(t *testing.T) {
	code := strings.Repeat("a", maxSampleLength+100)
	e := event(store.EventCodeRun, "p1", "T", "go", code, time.Now())
	got := formatCodeSample(e)

	if strings.Count(got, "a") != maxSampleLength {
		t.Errorf("expected code truncated to %d chars", maxSampleLength)
	}
	if !strings.Contains(got, "...") {
		t.Error("expected truncation marker")
	}
}

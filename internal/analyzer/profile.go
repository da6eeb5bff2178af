package analyzer

import (
	"fmt"
	"sort"

	"github.com/solvetrace/solvetrace/internal/store"
)

const (
	// maxCodeSamples is the number of recent code samples kept on a profile.
	maxCodeSamples = 5

	// minSampleLength filters out trivially short snippets.
	minSampleLength = 50

	// maxSampleLength truncates very long source code in formatted samples.
	maxSampleLength = 1000
)

// BuildProfile reduces a user's windowed coding events into a Profile.
// The events are expected to be pre-filtered to runs and submits; an empty
// slice yields a profile with all counts zero, which is not an error here —
// the orchestrator decides whether zero activity is reportable.
func BuildProfile(userID string, periodDays int, events []store.CodingEvent) Profile {
	p := Profile{
		UserID:            userID,
		PeriodDays:        periodDays,
		MostUsedLanguage:  "unknown",
		ProblemCategories: make(map[string]int),
	}

	problems := make(map[string]bool)
	langCounts := make(map[string]int)

	for _, e := range events {
		switch e.EventType {
		case store.EventCodeRun:
			p.TotalRuns++
		case store.EventCodeSubmit:
			p.TotalSubmits++
		}

		if e.ProblemID != "" {
			problems[e.ProblemID] = true
		}
		if e.Language != "" && e.Language != "unknown" {
			langCounts[e.Language]++
		}
		// Untitled events still count toward totals above.
		if e.ProblemTitle != "" {
			p.ProblemCategories[Categorize(e.ProblemTitle)]++
		}
	}

	p.TotalProblems = len(problems)

	p.LanguagesUsed = make([]string, 0, len(langCounts))
	for lang := range langCounts {
		p.LanguagesUsed = append(p.LanguagesUsed, lang)
	}
	sort.Strings(p.LanguagesUsed)

	// Mode by event count; alphabetical tie-break keeps output deterministic.
	best := 0
	for _, lang := range p.LanguagesUsed {
		if langCounts[lang] > best {
			best = langCounts[lang]
			p.MostUsedLanguage = lang
		}
	}

	p.RecentCodeSamples = extractRecentSamples(events)

	return p
}

// extractRecentSamples picks the most recent substantial code snippets,
// newest first, and renders each with its problem context.
func extractRecentSamples(events []store.CodingEvent) []string {
	candidates := make([]store.CodingEvent, 0, len(events))
	for _, e := range events {
		if len(e.SourceCode) > minSampleLength {
			candidates = append(candidates, e)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
	})

	if len(candidates) > maxCodeSamples {
		candidates = candidates[:maxCodeSamples]
	}

	samples := make([]string, 0, len(candidates))
	for _, e := range candidates {
		samples = append(samples, formatCodeSample(e))
	}
	return samples
}

func formatCodeSample(e store.CodingEvent) string {
	code := e.SourceCode
	if len(code) > maxSampleLength {
		code = code[:maxSampleLength] + "..."
	}

	title := e.ProblemTitle
	if title == "" {
		title = "Unknown Problem"
	}
	language := e.Language
	if language == "" {
		language = "unknown"
	}

	return fmt.Sprintf("Problem: %s\nLanguage: %s\nCode:\n%s\n---", title, language, code)
}

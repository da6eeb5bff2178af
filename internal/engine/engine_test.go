package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvetrace/solvetrace/internal/analyzer"
	"github.com/solvetrace/solvetrace/internal/store"
)

type fakeEvents struct {
	events []store.CodingEvent
	err    error

	gotUserID string
	gotSince  time.Time
}

func (f *fakeEvents) FindCodingEvents(userID string, since time.Time) ([]store.CodingEvent, error) {
	f.gotUserID = userID
	f.gotSince = since
	return f.events, f.err
}

type fakeRecords struct {
	saved *store.AnalysisRecord
	err   error
}

func (f *fakeRecords) SaveAnalysis(r *store.AnalysisRecord) error {
	if f.err != nil {
		return f.err
	}
	r.ID = 42
	f.saved = r
	return nil
}

type fakeProvider struct {
	text string
	err  error
}

func (f *fakeProvider) Generate(ctx context.Context, profile analyzer.Profile) (string, error) {
	return f.text, f.err
}

func activityEvents() []store.CodingEvent {
	now := time.Now()
	return []store.CodingEvent{
		{UserID: "u1", EventType: store.EventCodeRun, ProblemID: "p1", ProblemTitle: "Two Sum Array", Language: "go", CreatedAt: now},
		{UserID: "u1", EventType: store.EventCodeRun, ProblemID: "p1", ProblemTitle: "Two Sum Array", Language: "go", CreatedAt: now},
		{UserID: "u1", EventType: store.EventCodeSubmit, ProblemID: "p1", ProblemTitle: "Two Sum Array", Language: "go", CreatedAt: now},
	}
}

func newTestEngine(events *fakeEvents, records *fakeRecords, provider InsightProvider) *Engine {
	return New(events, records, provider, nil)
}

func TestAnalyze_Validation(t *testing.T) {
	eng := newTestEngine(&fakeEvents{}, &fakeRecords{}, nil)

	tests := []struct {
		name       string
		userID     string
		periodDays int
		wantReason string
	}{
		{"empty user", "", 30, "user ID cannot be empty"},
		{"period too small", "u1", 0, "period days must be between 1 and 365"},
		{"period too large", "u1", 366, "period days must be between 1 and 365"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := eng.Analyze(context.Background(), tc.userID, tc.periodDays)
			assert.Equal(t, Rejected, result.Outcome)
			assert.Equal(t, tc.wantReason, result.Reason)
			assert.Nil(t, result.Record)
		})
	}
}

func TestAnalyze_PeriodBoundsAccepted(t *testing.T) {
	for _, period := range []int{1, 365} {
		events := &fakeEvents{events: activityEvents()}
		records := &fakeRecords{}
		eng := newTestEngine(events, records, nil)

		result := eng.Analyze(context.Background(), "u1", period)
		assert.Equal(t, Success, result.Outcome, "period %d should be accepted", period)
	}
}

func TestAnalyze_NoActivity(t *testing.T) {
	events := &fakeEvents{events: nil}
	eng := newTestEngine(events, &fakeRecords{}, nil)

	result := eng.Analyze(context.Background(), "u1", 30)
	assert.Equal(t, Rejected, result.Outcome)
	assert.Equal(t, "no coding activity found for the specified period", result.Reason)
}

func TestAnalyze_EventFetchError(t *testing.T) {
	events := &fakeEvents{err: errors.New("db locked")}
	eng := newTestEngine(events, &fakeRecords{}, nil)

	result := eng.Analyze(context.Background(), "u1", 30)
	assert.Equal(t, Failed, result.Outcome)
	assert.Contains(t, result.Reason, "db locked")
}

func TestAnalyze_SaveError(t *testing.T) {
	events := &fakeEvents{events: activityEvents()}
	records := &fakeRecords{err: errors.New("disk full")}
	eng := newTestEngine(events, records, nil)

	result := eng.Analyze(context.Background(), "u1", 30)
	assert.Equal(t, Failed, result.Outcome)
	assert.Contains(t, result.Reason, "disk full")
}

func TestAnalyze_HeuristicPath(t *testing.T) {
	events := &fakeEvents{events: activityEvents()}
	records := &fakeRecords{}
	eng := newTestEngine(events, records, nil)

	result := eng.Analyze(context.Background(), "u1", 30)
	require.Equal(t, Success, result.Outcome)
	require.NotNil(t, result.Record)

	assert.Equal(t, int64(42), result.Record.ID)
	assert.Equal(t, ModelTagHeuristic, result.Record.AIModelUsed)
	assert.Equal(t, ConfidenceHeuristic, result.Record.Confidence)
	// The summary is extracted from the persisted style narrative, not a
	// canned phrase.
	assert.Equal(t, result.Record.ProblemSolvingStyle, result.Summary)
	assert.Equal(t, "Confident problem solver with a focused and efficient approach.", result.Summary)
	assert.Equal(t, "u1", result.Record.UserID)
	assert.Equal(t, 30, result.Record.PeriodDays)
	assert.Equal(t, 2, result.Record.TotalRuns)
	assert.Equal(t, 1, result.Record.TotalSubmits)
	assert.Equal(t, 1, result.Record.TotalProblems)
	assert.NotEmpty(t, result.Recommendations)

	var categories map[string]int
	require.NoError(t, json.Unmarshal([]byte(result.Record.ProblemCategoriesJSON), &categories))
	assert.Equal(t, 3, categories["Array"])

	var suggestions analyzer.Suggestions
	require.NoError(t, json.Unmarshal([]byte(result.Record.SuggestionsJSON), &suggestions))
	assert.Equal(t, analyzer.SuggestionTimeline, suggestions.Timeline)
}

func TestAnalyze_ProviderFailureFallsBack(t *testing.T) {
	events := &fakeEvents{events: activityEvents()}
	records := &fakeRecords{}
	provider := &fakeProvider{err: errors.New("timeout")}
	eng := newTestEngine(events, records, provider)

	result := eng.Analyze(context.Background(), "u1", 30)
	require.Equal(t, Success, result.Outcome)
	assert.Equal(t, ModelTagHeuristic, result.Record.AIModelUsed)
	assert.Equal(t, ConfidenceHeuristic, result.Record.Confidence)
	assert.Equal(t, result.Record.ProblemSolvingStyle, result.Summary)
}

func TestAnalyze_AIPath(t *testing.T) {
	events := &fakeEvents{events: activityEvents()}
	records := &fakeRecords{}
	provider := &fakeProvider{text: `{
		"problem_solving_style": "Deliberate and structured.",
		"approach_rating": 4.1,
		"quality_score": 4.4,
		"strengths": "Solid fundamentals",
		"weaknesses": "Few categories",
		"recommendations": ["Try graphs"],
		"learning_path": ["Graph theory"]
	}`}
	eng := newTestEngine(events, records, provider)

	result := eng.Analyze(context.Background(), "u1", 30)
	require.Equal(t, Success, result.Outcome)

	assert.Equal(t, ModelTagAI, result.Record.AIModelUsed)
	assert.Equal(t, ConfidenceAI, result.Record.Confidence)
	assert.Equal(t, "Deliberate and structured.", result.Record.ProblemSolvingStyle)
	assert.Equal(t, 4.1, result.Record.ApproachRating)
	assert.Equal(t, 4.4, result.Record.QualityScore)
	assert.Equal(t, "Deliberate and structured.", result.Summary)
	assert.Contains(t, result.Recommendations, "Try graphs")
	assert.Contains(t, result.Recommendations, "Graph theory")
}

func TestAnalyze_SinceWindow(t *testing.T) {
	events := &fakeEvents{events: activityEvents()}
	eng := newTestEngine(events, &fakeRecords{}, nil)

	before := time.Now().AddDate(0, 0, -7)
	_ = eng.Analyze(context.Background(), "u1", 7)
	after := time.Now().AddDate(0, 0, -7)

	assert.Equal(t, "u1", events.gotUserID)
	assert.False(t, events.gotSince.Before(before))
	assert.False(t, events.gotSince.After(after))
}

package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/solvetrace/solvetrace/internal/analyzer"
	"github.com/solvetrace/solvetrace/internal/store"
)

// Period bounds for an analysis window, in days.
const (
	MinPeriodDays = 1
	MaxPeriodDays = 365
)

// EventSource supplies the coding events to analyze.
type EventSource interface {
	FindCodingEvents(userID string, since time.Time) ([]store.CodingEvent, error)
}

// RecordStore persists finished analysis records.
type RecordStore interface {
	SaveAnalysis(r *store.AnalysisRecord) error
}

// InsightProvider produces the narrative analysis text. Implementations
// return insight.ErrUnavailable (or any error) to trigger the heuristic
// fallback.
type InsightProvider interface {
	Generate(ctx context.Context, profile analyzer.Profile) (string, error)
}

// Engine runs the analysis pipeline end to end. A nil provider means
// heuristic-only operation.
type Engine struct {
	events   EventSource
	records  RecordStore
	provider InsightProvider
	log      *zap.Logger
	now      func() time.Time
}

// New builds an engine. log may be nil.
func New(events EventSource, records RecordStore, provider InsightProvider, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		events:   events,
		records:  records,
		provider: provider,
		log:      log,
		now:      time.Now,
	}
}

// Analyze runs a full analysis for one user over the trailing period.
// Invalid input and zero activity come back as Rejected; storage errors as
// Failed. A language-model failure never fails the run: the heuristic
// report is persisted instead, tagged accordingly.
func (e *Engine) Analyze(ctx context.Context, userID string, periodDays int) Result {
	if userID == "" {
		return Result{Outcome: Rejected, Reason: "user ID cannot be empty"}
	}
	if periodDays < MinPeriodDays || periodDays > MaxPeriodDays {
		return Result{Outcome: Rejected, Reason: fmt.Sprintf("period days must be between %d and %d", MinPeriodDays, MaxPeriodDays)}
	}

	now := e.now()
	since := now.AddDate(0, 0, -periodDays)

	events, err := e.events.FindCodingEvents(userID, since)
	if err != nil {
		e.log.Error("fetching events failed", zap.String("user_id", userID), zap.Error(err))
		return Result{Outcome: Failed, Reason: fmt.Sprintf("fetching events: %v", err)}
	}

	profile := analyzer.BuildProfile(userID, periodDays, events)
	if profile.TotalRuns == 0 && profile.TotalSubmits == 0 {
		return Result{Outcome: Rejected, Reason: "no coding activity found for the specified period"}
	}

	e.log.Debug("profile built",
		zap.String("user_id", userID),
		zap.Int("runs", profile.TotalRuns),
		zap.Int("submits", profile.TotalSubmits),
		zap.Int("problems", profile.TotalProblems))

	heur := analyzer.Analyze(profile)

	var aiText string
	if e.provider != nil {
		aiText, err = e.provider.Generate(ctx, profile)
		if err != nil {
			e.log.Warn("language model unavailable, using heuristic analysis",
				zap.String("user_id", userID), zap.Error(err))
			aiText = ""
		}
	}

	report := heur
	modelTag := ModelTagHeuristic
	confidence := ConfidenceHeuristic
	var summary string
	if aiText != "" {
		report, summary = reconcileReport(heur, aiText)
		modelTag = ModelTagAI
		confidence = ConfidenceAI
	} else {
		summary = heuristicPathSummary(report.ProblemSolvingStyle)
	}

	record, err := buildRecord(profile, report, modelTag, confidence, now)
	if err != nil {
		return Result{Outcome: Failed, Reason: fmt.Sprintf("building record: %v", err)}
	}

	if err := e.records.SaveAnalysis(record); err != nil {
		e.log.Error("saving analysis failed", zap.String("user_id", userID), zap.Error(err))
		return Result{Outcome: Failed, Reason: fmt.Sprintf("saving analysis: %v", err)}
	}

	e.log.Info("analysis complete",
		zap.String("user_id", userID),
		zap.Int64("analysis_id", record.ID),
		zap.String("model", modelTag))

	return Result{
		Outcome:         Success,
		Record:          record,
		Summary:         summary,
		Recommendations: recommendationsFromJSON(record.SuggestionsJSON),
		Profile:         profile,
	}
}

// buildRecord assembles the persisted record from the profile and the
// reconciled report.
func buildRecord(p analyzer.Profile, report analyzer.Report, modelTag string, confidence float64, now time.Time) (*store.AnalysisRecord, error) {
	categoriesJSON, err := json.Marshal(p.ProblemCategories)
	if err != nil {
		return nil, errors.New("marshaling problem categories")
	}
	suggestionsJSON, err := json.Marshal(report.Suggestions)
	if err != nil {
		return nil, errors.New("marshaling suggestions")
	}

	return &store.AnalysisRecord{
		UserID:                p.UserID,
		AnalysisDate:          now,
		PeriodDays:            p.PeriodDays,
		TotalProblems:         p.TotalProblems,
		TotalRuns:             p.TotalRuns,
		TotalSubmits:          p.TotalSubmits,
		UniqueLanguages:       len(p.LanguagesUsed),
		MostUsedLanguage:      p.MostUsedLanguage,
		ProblemCategoriesJSON: string(categoriesJSON),
		ApproachRating:        report.ApproachRating,
		QualityScore:          report.QualityScore,
		ProblemSolvingStyle:   report.ProblemSolvingStyle,
		Strengths:             report.Strengths,
		Weaknesses:            report.Weaknesses,
		SuggestionsJSON:       string(suggestionsJSON),
		AIModelUsed:           modelTag,
		Confidence:            confidence,
	}, nil
}

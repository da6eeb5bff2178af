// Package engine orchestrates a full analysis run: event retrieval, profile
// aggregation, language-model narrative, reconciliation into a persisted
// record, and summary extraction.
package engine

import (
	"github.com/solvetrace/solvetrace/internal/analyzer"
	"github.com/solvetrace/solvetrace/internal/store"
)

// Outcome classifies how an analysis request ended.
type Outcome int

const (
	// Success means a record was produced and persisted.
	Success Outcome = iota
	// Rejected means the request was invalid or had no activity to analyze.
	Rejected
	// Failed means an internal error (storage, typically) stopped the run.
	Failed
)

// String renders the outcome for logs and API payloads.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Rejected:
		return "rejected"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Model tags and the confidence each one declares. A record is tagged
// ai-provider whenever any non-empty model text informed it, even if
// individual fields fell back to heuristics.
const (
	ModelTagAI        = "ai-provider"
	ModelTagHeuristic = "heuristic-fallback"

	ConfidenceAI        = 0.90
	ConfidenceHeuristic = 0.65
)

// Result is the full outcome of one analysis request.
type Result struct {
	Outcome Outcome
	// Reason explains a Rejected or Failed outcome.
	Reason string

	// Record is the persisted analysis; nil unless Outcome is Success.
	Record *store.AnalysisRecord

	// Summary is a short human-readable digest of the analysis narrative.
	Summary string
	// Recommendations are the actionable next steps pulled from the record.
	Recommendations []string

	// Profile is the aggregated snapshot the analysis was computed from.
	// Populated on Success so callers can render richer output.
	Profile analyzer.Profile
}

// Package store provides SQLite persistence for coding events and analysis records.
package store

import "time"

// Event types recorded by practice-platform ingestion. Only runs and submits
// feed the analysis pipeline; anything else is stored but ignored.
const (
	EventCodeRun    = "CODE_RUN"
	EventCodeSubmit = "CODE_SUBMIT"
)

// CodingEvent is a single recorded coding action (run or submit) tied to a
// user, problem, and timestamp. Events are immutable once inserted.
type CodingEvent struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	EventType    string    `json:"event_type"`
	ProblemID    string    `json:"problem_id,omitempty"`
	ProblemTitle string    `json:"problem_title,omitempty"`
	Platform     string    `json:"platform,omitempty"`
	SessionID    string    `json:"session_id,omitempty"`
	Language     string    `json:"language,omitempty"`
	SourceCode   string    `json:"source_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AnalysisRecord is a persisted coding pattern analysis for one user over one
// period. Created once per successful analysis run; the store assigns the ID
// and timestamps on save.
type AnalysisRecord struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	AnalysisDate time.Time `json:"analysis_date"`
	PeriodDays   int       `json:"period_days"`

	// Summary statistics carried over from the profile.
	TotalProblems    int    `json:"total_problems"`
	TotalRuns        int    `json:"total_runs"`
	TotalSubmits     int    `json:"total_submits"`
	UniqueLanguages  int    `json:"unique_languages"`
	MostUsedLanguage string `json:"most_used_language"`

	// ProblemCategoriesJSON is a JSON object mapping category name to count.
	ProblemCategoriesJSON string `json:"problem_categories_json"`

	// Ratings and narrative fields, AI-extracted or heuristic.
	ApproachRating      float64 `json:"approach_rating"`
	QualityScore        float64 `json:"quality_score"`
	ProblemSolvingStyle string  `json:"problem_solving_style"`
	Strengths           string  `json:"strengths"`
	Weaknesses          string  `json:"weaknesses"`

	// SuggestionsJSON is the serialized improvement suggestions object
	// (focus_areas, next_steps, resources, timeline).
	SuggestionsJSON string `json:"suggestions_json"`

	// AIModelUsed is "ai-provider" when the language model produced the
	// narrative, "heuristic-fallback" otherwise. Confidence is the declared
	// trust score for the chosen path.
	AIModelUsed string  `json:"ai_model_used"`
	Confidence  float64 `json:"confidence"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

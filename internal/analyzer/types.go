// Package analyzer aggregates raw coding events into a statistical profile
// and derives a rule-based analysis report from it. Everything in this
// package is pure computation: no I/O, no clock access beyond the inputs.
package analyzer

// Profile is the aggregated statistical snapshot of a user's coding events
// over a time window. Built fresh per analysis request.
type Profile struct {
	UserID     string `json:"user_id"`
	PeriodDays int    `json:"period_days"`

	// TotalProblems counts distinct problem IDs among the windowed events.
	// A problem attempted with only runs or only submits still counts, so
	// no ordering between TotalProblems and TotalRuns+TotalSubmits holds.
	TotalProblems int `json:"total_problems"`
	TotalRuns     int `json:"total_runs"`
	TotalSubmits  int `json:"total_submits"`

	// LanguagesUsed holds the distinct non-empty, non-"unknown" languages,
	// sorted for deterministic output.
	LanguagesUsed    []string `json:"languages_used"`
	MostUsedLanguage string   `json:"most_used_language"`

	// ProblemCategories maps category name to event count, assigned by
	// keyword match on problem titles.
	ProblemCategories map[string]int `json:"problem_categories"`

	// RecentCodeSamples holds up to five formatted samples, newest first.
	RecentCodeSamples []string `json:"recent_code_samples"`
}

// Suggestions groups improvement recommendations. The JSON field names match
// the persisted suggestions document.
type Suggestions struct {
	FocusAreas []string `json:"focus_areas"`
	NextSteps  []string `json:"next_steps"`
	Resources  []string `json:"resources"`
	Timeline   string   `json:"timeline"`
}

// Report is the rule-based analysis derived from a Profile. Recomputed on
// every call; identical profiles yield identical reports.
type Report struct {
	ApproachRating      float64     `json:"approach_rating"`
	QualityScore        float64     `json:"quality_score"`
	ProblemSolvingStyle string      `json:"problem_solving_style"`
	Strengths           string      `json:"strengths"`
	Weaknesses          string      `json:"weaknesses"`
	Suggestions         Suggestions `json:"suggestions"`
}

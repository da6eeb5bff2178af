package store

import (
	"database/sql"
	"time"
)

// dateOnly is the storage format for analysis_date.
const dateOnly = "2006-01-02"

// SaveAnalysis inserts an analysis record, assigning its ID and timestamps.
// The passed record is updated in place.
func (db *DB) SaveAnalysis(r *AnalysisRecord) error {
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.AnalysisDate.IsZero() {
		r.AnalysisDate = now
	}

	result, err := db.conn.Exec(
		`INSERT INTO analysis_results
		(user_id, analysis_date, period_days, total_problems, total_runs,
		 total_submits, unique_languages, most_used_language,
		 problem_categories_json, approach_rating, quality_score,
		 problem_solving_style, strengths, weaknesses, suggestions_json,
		 ai_model_used, confidence, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.UserID, r.AnalysisDate.Format(dateOnly), r.PeriodDays,
		r.TotalProblems, r.TotalRuns, r.TotalSubmits, r.UniqueLanguages,
		r.MostUsedLanguage, r.ProblemCategoriesJSON, r.ApproachRating,
		r.QualityScore, r.ProblemSolvingStyle, r.Strengths, r.Weaknesses,
		r.SuggestionsJSON, r.AIModelUsed, r.Confidence,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	r.ID, err = result.LastInsertId()
	return err
}

// AnalysisHistory returns the user's analyses, most recent first.
func (db *DB) AnalysisHistory(userID string, limit int) ([]AnalysisRecord, error) {
	rows, err := db.conn.Query(
		selectAnalysis+` WHERE user_id = ? ORDER BY analysis_date DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []AnalysisRecord
	for rows.Next() {
		r, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// LatestAnalysis returns the user's most recent analysis, or nil if none exist.
func (db *DB) LatestAnalysis(userID string) (*AnalysisRecord, error) {
	records, err := db.AnalysisHistory(userID, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

const selectAnalysis = `SELECT id, user_id, analysis_date, period_days,
	total_problems, total_runs, total_submits, unique_languages,
	most_used_language, problem_categories_json, approach_rating,
	quality_score, problem_solving_style, strengths, weaknesses,
	suggestions_json, ai_model_used, confidence, created_at, updated_at
	FROM analysis_results`

func scanAnalysis(rows *sql.Rows) (AnalysisRecord, error) {
	var r AnalysisRecord
	var analysisDate, createdAt, updatedAt string
	var mostUsed, categories, style, strengths, weaknesses, suggestions sql.NullString
	if err := rows.Scan(
		&r.ID, &r.UserID, &analysisDate, &r.PeriodDays,
		&r.TotalProblems, &r.TotalRuns, &r.TotalSubmits, &r.UniqueLanguages,
		&mostUsed, &categories, &r.ApproachRating, &r.QualityScore,
		&style, &strengths, &weaknesses, &suggestions,
		&r.AIModelUsed, &r.Confidence, &createdAt, &updatedAt,
	); err != nil {
		return AnalysisRecord{}, err
	}
	r.MostUsedLanguage = mostUsed.String
	r.ProblemCategoriesJSON = categories.String
	r.ProblemSolvingStyle = style.String
	r.Strengths = strengths.String
	r.Weaknesses = weaknesses.String
	r.SuggestionsJSON = suggestions.String
	r.AnalysisDate, _ = time.Parse(dateOnly, analysisDate)
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	r.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return r, nil
}

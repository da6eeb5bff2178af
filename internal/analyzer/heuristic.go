package analyzer

// Rating bounds for approach and quality scores.
const (
	RatingMin = 1.0
	RatingMax = 5.0
)

// Analyze derives a full rule-based report from a profile. It always returns
// a fully populated report; an all-zero profile clamps to the base ratings.
func Analyze(p Profile) Report {
	return Report{
		ApproachRating:      ApproachRating(p),
		QualityScore:        QualityScore(p),
		ProblemSolvingStyle: problemSolvingStyle(p),
		Strengths:           strengths(p),
		Weaknesses:          weaknesses(p),
		Suggestions:         buildSuggestions(p),
	}
}

// ApproachRating scores how well the user plans before coding, from activity
// volume and breadth signals. Base 3.0, clamped to [1.0, 5.0].
func ApproachRating(p Profile) float64 {
	rating := 3.0
	if p.TotalRuns > 10 {
		rating += 0.5
	}
	if p.TotalSubmits > 5 {
		rating += 0.3
	}
	if p.TotalProblems > 5 {
		rating += 0.4
	}
	if len(p.LanguagesUsed) > 1 {
		rating += 0.2
	}
	if len(p.ProblemCategories) > 3 {
		rating += 0.2
	}
	return clampRating(rating)
}

// QualityScore scores code quality from the run-to-submit ratio and the
// completion rate. Base 3.5, clamped to [1.0, 5.0].
func QualityScore(p Profile) float64 {
	score := 3.5

	if p.TotalSubmits > 0 {
		ratio := float64(p.TotalRuns) / float64(p.TotalSubmits)
		switch {
		case ratio <= 2:
			score += 1.0
		case ratio <= 3:
			score += 0.5
		case ratio > 6:
			score -= 0.3
		}
	}

	if p.TotalProblems > 0 && p.TotalSubmits > 0 {
		submitRatio := float64(p.TotalSubmits) / float64(p.TotalProblems)
		if submitRatio > 0.7 {
			score += 0.3
		}
	}

	return clampRating(score)
}

func clampRating(v float64) float64 {
	if v < RatingMin {
		return RatingMin
	}
	if v > RatingMax {
		return RatingMax
	}
	return v
}

// runToSubmitRatio is 0 when the user has never submitted.
func runToSubmitRatio(p Profile) float64 {
	if p.TotalSubmits == 0 {
		return 0
	}
	return float64(p.TotalRuns) / float64(p.TotalSubmits)
}

package analyzer

import (
	"reflect"
	"testing"
)

func TestApproachRating(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    float64
	}{
		{
			name:    "zero activity stays at base",
			profile: Profile{},
			want:    3.0,
		},
		{
			name: "volume and breadth bonuses",
			profile: Profile{
				TotalRuns:     12,
				TotalSubmits:  5,
				TotalProblems: 8,
				LanguagesUsed: []string{"go"},
				ProblemCategories: map[string]int{
					"Array": 3, "Tree": 2,
				},
			},
			want: 3.9, // 3.0 + 0.5 runs + 0.4 problems
		},
		{
			name: "all bonuses",
			profile: Profile{
				TotalRuns:     20,
				TotalSubmits:  10,
				TotalProblems: 12,
				LanguagesUsed: []string{"go", "python"},
				ProblemCategories: map[string]int{
					"Array": 1, "Tree": 1, "Graph": 1, "String": 1,
				},
			},
			want: 4.6, // 3.0 + 0.5 + 0.3 + 0.4 + 0.2 + 0.2
		},
		{
			name: "thresholds are strict",
			profile: Profile{
				TotalRuns:     10,
				TotalSubmits:  5,
				TotalProblems: 5,
				LanguagesUsed: []string{"go"},
			},
			want: 3.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ApproachRating(tc.profile)
			if !almostEqual(got, tc.want) {
				t.Errorf("ApproachRating() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    float64
	}{
		{
			name:    "no submits stays at base",
			profile: Profile{TotalRuns: 30},
			want:    3.5,
		},
		{
			name: "efficient ratio with high completion",
			profile: Profile{
				TotalRuns:     10,
				TotalSubmits:  8,
				TotalProblems: 10,
			},
			want: 4.8, // 3.5 + 1.0 ratio + 0.3 completion
		},
		{
			name: "moderate ratio",
			profile: Profile{
				TotalRuns:     12,
				TotalSubmits:  5,
				TotalProblems: 8,
			},
			want: 4.0, // ratio 2.4 adds 0.5
		},
		{
			name: "excessive iteration penalized",
			profile: Profile{
				TotalRuns:     35,
				TotalSubmits:  5,
				TotalProblems: 20,
			},
			want: 3.2, // ratio 7 subtracts 0.3
		},
		{
			name: "ratio of exactly 3 gets the moderate bonus",
			profile: Profile{
				TotalRuns:     12,
				TotalSubmits:  4,
				TotalProblems: 6,
			},
			want: 4.0,
		},
		{
			name: "ratio between 3 and 6 is neutral",
			profile: Profile{
				TotalRuns:     20,
				TotalSubmits:  5,
				TotalProblems: 20,
			},
			want: 3.5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := QualityScore(tc.profile)
			if !almostEqual(got, tc.want) {
				t.Errorf("QualityScore() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClampRating(t *testing.T) {
	if got := clampRating(0.2); got != RatingMin {
		t.Errorf("clampRating(0.2) = %v, want %v", got, RatingMin)
	}
	if got := clampRating(7.5); got != RatingMax {
		t.Errorf("clampRating(7.5) = %v, want %v", got, RatingMax)
	}
	if got := clampRating(3.3); got != 3.3 {
		t.Errorf("clampRating(3.3) = %v, want 3.3", got)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	p := Profile{
		UserID:        "u1",
		PeriodDays:    30,
		TotalRuns:     14,
		TotalSubmits:  6,
		TotalProblems: 7,
		LanguagesUsed: []string{"go", "python"},
		ProblemCategories: map[string]int{
			"Array": 4, "Tree": 2, "Graph": 1,
		},
	}

	first := Analyze(p)
	second := Analyze(p)
	if !reflect.DeepEqual(first, second) {
		t.Error("Analyze() is not deterministic for identical profiles")
	}

	if first.ProblemSolvingStyle == "" {
		t.Error("expected non-empty problem solving style")
	}
	if first.Strengths == "" {
		t.Error("expected non-empty strengths")
	}
	if first.Weaknesses == "" {
		t.Error("expected non-empty weaknesses")
	}
	if first.Suggestions.Timeline != SuggestionTimeline {
		t.Errorf("timeline = %q, want %q", first.Suggestions.Timeline, SuggestionTimeline)
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}

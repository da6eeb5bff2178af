package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/solvetrace/solvetrace/internal/store"
)

// RenderAnalysis renders a stored analysis as a styled terminal report.
func RenderAnalysis(r *store.AnalysisRecord, summary string, recommendations []string) string {
	var sb strings.Builder

	sb.WriteString(Section(fmt.Sprintf("Coding Pattern Analysis — %s", r.UserID)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		StyleLabel.Render("Period"),
		StyleValue.Render(fmt.Sprintf("%d days", r.PeriodDays))))
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		StyleLabel.Render("Analysis date"),
		StyleValue.Render(r.AnalysisDate.Format("2006-01-02"))))
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		StyleLabel.Render("Model"),
		StyleMuted.Render(fmt.Sprintf("%s (confidence %.2f)", r.AIModelUsed, r.Confidence))))

	sb.WriteString(Section("Activity"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		StyleLabel.Render("Problems"),
		StyleValue.Render(fmt.Sprintf("%d", r.TotalProblems))))
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		StyleLabel.Render("Runs"),
		StyleValue.Render(fmt.Sprintf("%d", r.TotalRuns))))
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		StyleLabel.Render("Submits"),
		StyleValue.Render(fmt.Sprintf("%d", r.TotalSubmits))))
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		StyleLabel.Render("Languages"),
		StyleValue.Render(fmt.Sprintf("%d (%s)", r.UniqueLanguages, r.MostUsedLanguage))))
	if categories := formatCategoriesJSON(r.ProblemCategoriesJSON); categories != "" {
		sb.WriteString(fmt.Sprintf(" %s %s\n",
			StyleLabel.Render("Categories"), categories))
	}

	sb.WriteString(Section("Scores"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		StyleLabel.Render("Initial approach"), RatingBar(r.ApproachRating, 10)))
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		StyleLabel.Render("Code quality"), RatingBar(r.QualityScore, 10)))

	sb.WriteString(Section("Assessment"))
	sb.WriteString("\n")
	if summary != "" {
		sb.WriteString(fmt.Sprintf(" %s\n\n", summary))
	}
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		StyleBold.Render("Style:"), r.ProblemSolvingStyle))
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		StyleSuccess.Render("Strengths:"), r.Strengths))
	sb.WriteString(fmt.Sprintf(" %s %s\n",
		StyleWarning.Render("Weaknesses:"), r.Weaknesses))

	if len(recommendations) > 0 {
		sb.WriteString(Section("Recommendations"))
		sb.WriteString("\n")
		for _, rec := range recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	return sb.String()
}

// formatCategoriesJSON renders the persisted category counts, sorted by
// count descending with name as tie-break.
func formatCategoriesJSON(categoriesJSON string) string {
	var categories map[string]int
	if err := json.Unmarshal([]byte(categoriesJSON), &categories); err != nil || len(categories) == 0 {
		return ""
	}

	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(categories))
	for name, count := range categories {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s (%d)", e.name, e.count))
	}
	return strings.Join(parts, ", ")
}

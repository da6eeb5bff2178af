package insight

import (
	"fmt"
	"strings"

	"github.com/solvetrace/solvetrace/internal/analyzer"
)

// systemPrompt asks for a fixed JSON schema first, so the reconciler can
// usually parse the answer structurally. The numbered rubric in the user
// prompt keeps prose answers extractable when a model ignores the schema.
const systemPrompt = `You are an expert coding mentor and technical interviewer. Provide detailed, actionable insights about coding patterns and improvement recommendations.

Respond with a single JSON object matching this schema, with no surrounding commentary:
{
  "problem_solving_style": "description of their approach (methodical, iterative, experimental, etc.)",
  "approach_rating": 1.0,
  "quality_score": 1.0,
  "strengths": "3-4 specific strengths, comma-separated",
  "weaknesses": "3-4 specific areas to address, comma-separated",
  "recommendations": ["concrete next step", "..."],
  "learning_path": ["suggested topic or resource", "..."]
}
Both ratings are on a 1-5 scale and may use one decimal place. Every field must be grounded in the data provided.`

// BuildPrompt renders the analysis request embedding every profile field.
func BuildPrompt(p analyzer.Profile) string {
	var sb strings.Builder

	sb.WriteString("Analyze this developer's coding patterns and provide comprehensive insights:\n\n")

	sb.WriteString("CODING ACTIVITY:\n")
	fmt.Fprintf(&sb, "- Problems attempted: %d\n", p.TotalProblems)
	fmt.Fprintf(&sb, "- Code executions: %d\n", p.TotalRuns)
	fmt.Fprintf(&sb, "- Successful submissions: %d\n", p.TotalSubmits)
	fmt.Fprintf(&sb, "- Analysis period: %d days\n", p.PeriodDays)
	fmt.Fprintf(&sb, "- Languages used: %s\n", strings.Join(p.LanguagesUsed, ", "))
	fmt.Fprintf(&sb, "- Most used language: %s\n", p.MostUsedLanguage)
	fmt.Fprintf(&sb, "- Problem categories: %s\n", formatCategories(p.ProblemCategories))

	if len(p.RecentCodeSamples) > 0 {
		sb.WriteString("\nRECENT CODE SAMPLES:\n")
		for _, sample := range p.RecentCodeSamples {
			sb.WriteString(sample)
			sb.WriteString("\n")
		}
	}

	sb.WriteString(`
PROVIDE DETAILED ANALYSIS:
1. **Problem-Solving Style**: Describe their approach (methodical, iterative, experimental, etc.)
2. **Initial Approach Rating** (1-5): Rate how well they plan before coding
3. **Code Quality Score** (1-5): Assess efficiency and best practices
4. **Key Strengths**: What they do well (3-4 specific strengths)
5. **Areas for Improvement**: Specific weaknesses to address (3-4 areas)
6. **Actionable Recommendations**: Concrete next steps for improvement
7. **Learning Path**: Suggested topics/resources for continued growth

Please provide specific, actionable insights based on the data patterns.
`)

	return sb.String()
}

// formatCategories renders the category map deterministically for the prompt.
func formatCategories(categories map[string]int) string {
	if len(categories) == 0 {
		return "none"
	}
	return analyzer.FormatCategoryCounts(categories)
}

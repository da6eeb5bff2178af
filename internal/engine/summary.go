package engine

import (
	"encoding/json"
	"strings"

	"github.com/solvetrace/solvetrace/internal/analyzer"
)

const (
	summaryMaxLength = 200

	heuristicSummary = "Analysis completed with basic heuristic evaluation."
	defaultSummary   = "Comprehensive coding pattern analysis completed based on your recent activity."
)

var defaultRecommendations = []string{
	"Continue practicing regularly",
	"Focus on problem-solving patterns",
}

// heuristicPathSummary derives the outward summary from the generated style
// narrative. The fixed phrase is used only when the narrative is blank, which
// the style generator never produces for an active profile.
func heuristicPathSummary(style string) string {
	if strings.TrimSpace(style) == "" {
		return heuristicSummary
	}
	return extractSummary(style)
}

// extractSummary pulls the first substantial paragraph from the narrative,
// capped at 200 characters. Headings don't count as paragraphs.
func extractSummary(narrative string) string {
	for _, section := range strings.Split(narrative, "\n\n") {
		cleaned := strings.TrimSpace(section)
		if strings.HasPrefix(cleaned, "#") {
			continue
		}
		cleaned = cleanMarkup(cleaned)
		cleaned = strings.Join(strings.Fields(cleaned), " ")
		if len(cleaned) <= 50 {
			continue
		}
		return truncateSummary(cleaned)
	}
	return defaultSummary
}

// truncateSummary normalizes whitespace and caps the summary length.
func truncateSummary(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > summaryMaxLength {
		s = s[:summaryMaxLength-3] + "..."
	}
	return s
}

// recommendationsFromJSON decodes the persisted suggestions document into the
// flat list the API and CLI present. Focus areas lead, next steps follow.
// Undecodable or empty documents fall back to generic recommendations.
func recommendationsFromJSON(suggestionsJSON string) []string {
	var s analyzer.Suggestions
	if err := json.Unmarshal([]byte(suggestionsJSON), &s); err != nil {
		return defaultRecommendations
	}

	recs := make([]string, 0, len(s.FocusAreas)+len(s.NextSteps))
	recs = append(recs, s.FocusAreas...)
	recs = append(recs, s.NextSteps...)
	if len(recs) == 0 {
		return defaultRecommendations
	}
	return recs
}

package engine

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/solvetrace/solvetrace/internal/analyzer"
)

// aiDocument is the structured answer the model is asked to produce.
type aiDocument struct {
	ProblemSolvingStyle string   `json:"problem_solving_style"`
	ApproachRating      float64  `json:"approach_rating"`
	QualityScore        float64  `json:"quality_score"`
	Strengths           string   `json:"strengths"`
	Weaknesses          string   `json:"weaknesses"`
	Recommendations     []string `json:"recommendations"`
	LearningPath        []string `json:"learning_path"`
}

// ratingPattern matches a 1-5 score with an optional single decimal, as in
// "4" or "4.5/5".
var ratingPattern = regexp.MustCompile(`\b[1-5](?:\.[0-9])?\b`)

// reconcileReport merges the model's narrative into the heuristic report,
// field by field, and returns the summary line to present. Structured JSON
// is tried first; failing that, fields are extracted from prose. Any field
// the model did not usably answer keeps its heuristic value. Suggestions are
// replaced all-or-nothing: an extracted recommendations list displaces the
// heuristic set in full, and anything less keeps it in full.
func reconcileReport(heur analyzer.Report, aiText string) (analyzer.Report, string) {
	report := heur

	if doc, ok := parseStructured(aiText); ok {
		if s := strings.TrimSpace(doc.ProblemSolvingStyle); s != "" {
			report.ProblemSolvingStyle = s
		}
		if validRating(doc.ApproachRating) {
			report.ApproachRating = doc.ApproachRating
		}
		if validRating(doc.QualityScore) {
			report.QualityScore = doc.QualityScore
		}
		if s := strings.TrimSpace(doc.Strengths); s != "" {
			report.Strengths = s
		}
		if s := strings.TrimSpace(doc.Weaknesses); s != "" {
			report.Weaknesses = s
		}
		if len(doc.Recommendations) > 0 {
			report.Suggestions = buildSuggestions(doc.Recommendations, doc.LearningPath)
		}
		// A structured answer has no narrative paragraph; the style field is
		// the closest thing to a summary.
		summary := truncateSummary(report.ProblemSolvingStyle)
		if summary == "" {
			summary = defaultSummary
		}
		return report, summary
	}

	if s := extractSection(aiText, "Problem-Solving Style"); s != "" {
		report.ProblemSolvingStyle = s
	}
	if r, ok := extractRating(aiText, "rating"); ok {
		report.ApproachRating = r
	}
	if r, ok := extractRating(aiText, "quality"); ok {
		report.QualityScore = r
	}
	if s := extractSection(aiText, "Strengths"); s != "" {
		report.Strengths = s
	}
	if s := extractSection(aiText, "Areas for Improvement"); s != "" {
		report.Weaknesses = s
	} else if s := extractSection(aiText, "Weaknesses"); s != "" {
		report.Weaknesses = s
	}

	if recs := extractBullets(aiText, "Recommendations"); len(recs) > 0 {
		report.Suggestions = buildSuggestions(recs, extractBullets(aiText, "Learning Path"))
	}

	return report, extractSummary(aiText)
}

// buildSuggestions assembles the suggestions object from an extracted
// recommendations list. The list stands in for both focus areas and next
// steps; a learning path, when present, takes over focus areas and fills
// resources.
func buildSuggestions(recommendations, learningPath []string) analyzer.Suggestions {
	focus := recommendations
	if len(learningPath) > 0 {
		focus = learningPath
	}
	return analyzer.Suggestions{
		FocusAreas: focus,
		NextSteps:  recommendations,
		Resources:  learningPath,
		Timeline:   analyzer.SuggestionTimeline,
	}
}

// parseStructured tries to read the response as the requested JSON document,
// tolerating markdown code fences and surrounding commentary.
func parseStructured(text string) (aiDocument, bool) {
	cleaned := stripCodeFences(text)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return aiDocument{}, false
	}

	var doc aiDocument
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &doc); err != nil {
		return aiDocument{}, false
	}

	// An object with no recognizable content is prose, not an answer.
	if doc.ProblemSolvingStyle == "" && doc.Strengths == "" && doc.Weaknesses == "" &&
		doc.ApproachRating == 0 && doc.QualityScore == 0 &&
		len(doc.Recommendations) == 0 && len(doc.LearningPath) == 0 {
		return aiDocument{}, false
	}

	return doc, true
}

// stripCodeFences removes a leading ```json (or bare ```) fence and its
// closing fence, if present.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

func validRating(v float64) bool {
	return v >= analyzer.RatingMin && v <= analyzer.RatingMax
}

// extractRating finds the first line mentioning the keyword and pulls a 1-5
// score from it. When the line has a colon, only the text after it is
// searched, so rubric text like "(1-5)" in the label cannot match.
func extractRating(text, keyword string) (float64, bool) {
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(strings.ToLower(line), keyword) {
			continue
		}
		target := line
		if idx := strings.Index(line, ":"); idx >= 0 {
			target = line[idx+1:]
		}
		match := ratingPattern.FindString(target)
		if match == "" {
			continue
		}
		v, err := strconv.ParseFloat(match, 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

// extractSection returns the prose under a markdown-style header, flattened
// to a single line. Collection starts with any text after the header's colon
// and runs across blank lines until the next header, so multi-paragraph
// sections survive whole.
func extractSection(text, header string) string {
	lines := strings.Split(text, "\n")
	lowerHeader := strings.ToLower(header)

	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), lowerHeader) {
			continue
		}

		var parts []string
		if idx := strings.Index(line, ":"); idx >= 0 {
			if rest := cleanMarkup(line[idx+1:]); rest != "" {
				parts = append(parts, rest)
			}
		}
		for j := i + 1; j < len(lines); j++ {
			t := strings.TrimSpace(lines[j])
			if t == "" {
				continue
			}
			if isHeaderLine(t) {
				break
			}
			parts = append(parts, cleanMarkup(t))
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// extractBullets returns the bullet items listed under a header.
func extractBullets(text, header string) []string {
	lines := strings.Split(text, "\n")
	lowerHeader := strings.ToLower(header)

	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), lowerHeader) {
			continue
		}

		var items []string
		for j := i + 1; j < len(lines); j++ {
			t := strings.TrimSpace(lines[j])
			if t == "" {
				if len(items) > 0 {
					break
				}
				continue
			}
			if isHeaderLine(t) {
				break
			}
			marker, ok := bulletMarker(t)
			if !ok {
				break
			}
			item := cleanMarkup(strings.TrimSpace(strings.TrimPrefix(t, marker)))
			if item != "" {
				items = append(items, item)
			}
		}
		return items
	}
	return nil
}

func bulletMarker(line string) (string, bool) {
	for _, m := range []string{"• ", "- ", "* "} {
		if strings.HasPrefix(line, m) {
			return m, true
		}
	}
	// Numbered items also count as bullets.
	if len(line) > 2 && line[0] >= '1' && line[0] <= '9' && line[1] == '.' {
		return line[:2], true
	}
	return "", false
}

// isHeaderLine reports whether a trimmed line starts a new section.
func isHeaderLine(line string) bool {
	if strings.HasPrefix(line, "**") || strings.HasPrefix(line, "#") {
		return true
	}
	// Numbered rubric headers like "4. **Key Strengths**:".
	if len(line) > 2 && line[0] >= '1' && line[0] <= '9' && line[1] == '.' {
		return strings.Contains(line, "**")
	}
	return false
}

// cleanMarkup strips bold markers and leading header hashes from a fragment.
func cleanMarkup(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.TrimLeft(s, "# ")
	return strings.TrimSpace(s)
}

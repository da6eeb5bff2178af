package analyzer

// SuggestionTimeline is the fixed improvement timeline attached to every
// suggestions object.
const SuggestionTimeline = "2-4 weeks for immediate improvements, 2-3 months for advanced skills"

// buildSuggestions populates focus areas, next steps, and resources from the
// same ordered threshold checklist as the narrative fields.
func buildSuggestions(p Profile) Suggestions {
	var focusAreas, nextSteps, resources []string

	if len(p.ProblemCategories) <= 2 {
		focusAreas = append(focusAreas, "Expand into new problem categories (Graphs, Dynamic Programming, Trees)")
		resources = append(resources, "LeetCode problem categories guide")
	}

	if len(p.LanguagesUsed) == 1 {
		focusAreas = append(focusAreas, "Learn a second programming language (Python/Java/C++)")
		resources = append(resources, "Multi-language algorithm practice")
	}

	ratio := runToSubmitRatio(p)
	if ratio > 4 {
		focusAreas = append(focusAreas, "Improve initial problem analysis to reduce testing iterations")
		resources = append(resources, "Problem-solving frameworks and pattern recognition")
	} else if ratio < 1.5 {
		focusAreas = append(focusAreas, "Increase code testing and edge case consideration")
	}

	// Next-step tiers by problem volume.
	switch {
	case p.TotalProblems < 10:
		nextSteps = append(nextSteps,
			"Complete 15-20 problems in the next month",
			"Focus on fundamental data structures (Arrays, LinkedLists, Stacks)")
	case p.TotalProblems < 50:
		nextSteps = append(nextSteps,
			"Progress to medium-difficulty problems",
			"Study time and space complexity analysis")
	default:
		nextSteps = append(nextSteps,
			"Tackle hard problems and optimize existing solutions",
			"Explore system design concepts")
	}

	nextSteps = append(nextSteps,
		"Join coding competitions or daily challenges",
		"Review and optimize your most challenging solutions")

	return Suggestions{
		FocusAreas: focusAreas,
		NextSteps:  nextSteps,
		Resources:  resources,
		Timeline:   SuggestionTimeline,
	}
}

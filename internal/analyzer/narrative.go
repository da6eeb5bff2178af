package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// problemSolvingStyle builds a short templated description of how the user
// approaches problems.
func problemSolvingStyle(p Profile) string {
	var sb strings.Builder

	if p.TotalRuns > p.TotalSubmits*2 {
		sb.WriteString("Iterative problem solver who thoroughly tests code before submission. ")
	} else {
		sb.WriteString("Confident problem solver with a focused and efficient approach. ")
	}

	if len(p.LanguagesUsed) > 1 {
		sb.WriteString("Demonstrates versatility by using multiple programming languages. ")
	}

	if len(p.ProblemCategories) > 2 {
		sb.WriteString("Shows breadth in problem-solving by tackling diverse categories. ")
	}

	return strings.TrimSpace(sb.String())
}

// strengths builds a comma-joined phrase list from an ordered threshold
// checklist. The order is fixed: downstream prose concatenation depends on it.
func strengths(p Profile) string {
	items := []string{"Active coding practice"}

	if p.TotalRuns > 5 {
		items = append(items, "Regular practice habits")
	}
	if len(p.LanguagesUsed) > 1 {
		items = append(items, "Language versatility")
	}
	if len(p.ProblemCategories) > 3 {
		items = append(items, "Diverse problem-solving approach")
	}
	if float64(p.TotalSubmits) > float64(p.TotalRuns)*0.3 {
		items = append(items, "Good solution completion rate")
	}

	return strings.Join(items, ", ")
}

// weaknesses builds the weakness phrase list; when nothing triggers, a
// generic growth phrase substitutes so the field is never empty.
func weaknesses(p Profile) string {
	var items []string

	if p.PeriodDays < 14 {
		items = append(items, "Limited analysis period")
	}
	if len(p.ProblemCategories) <= 2 {
		items = append(items, "Need more diverse problem categories")
	}
	if len(p.LanguagesUsed) == 1 {
		items = append(items, "Could benefit from exploring multiple programming languages")
	}
	if p.TotalRuns > p.TotalSubmits*5 {
		items = append(items, "High run-to-submit ratio suggests room for improvement in solution confidence")
	}

	if len(items) == 0 {
		items = append(items, "Areas for continued growth and learning")
	}

	return strings.Join(items, ", ")
}

// NarrativeFallback renders a full markdown analysis from the profile alone.
// It stands in for the language model's narrative when the AI path is
// unavailable, so summary extraction always has a real paragraph to work with.
func NarrativeFallback(p Profile) string {
	var sb strings.Builder
	ratio := runToSubmitRatio(p)

	sb.WriteString("## **CODING PATTERN ANALYSIS**\n\n")

	sb.WriteString("### **Problem-Solving Approach**\n")
	switch {
	case ratio > 3:
		fmt.Fprintf(&sb, "You demonstrate a **thorough, iterative approach** to problem-solving. "+
			"With %d code executions across %d submissions (%.1fx ratio), you clearly prefer "+
			"to test and refine your solutions before submitting. This methodical approach "+
			"shows strong debugging skills and attention to detail.\n\n",
			p.TotalRuns, p.TotalSubmits, ratio)
	case ratio > 1.5:
		fmt.Fprintf(&sb, "You show a **balanced, confident approach** to coding. Your run-to-submit "+
			"ratio of %.1f suggests you test your code appropriately while maintaining "+
			"efficiency. This indicates good problem-solving intuition.\n\n", ratio)
	default:
		sb.WriteString("You demonstrate a **direct, confident coding style**. With minimal testing " +
			"iterations before submission, you likely have strong initial problem analysis " +
			"skills and code confidence.\n\n")
	}

	sb.WriteString("### **Practice Consistency & Volume**\n")
	switch {
	case p.TotalRuns > 50:
		sb.WriteString("**Excellent activity level!** ")
	case p.TotalRuns > 20:
		sb.WriteString("**Good practice consistency.** ")
	case p.TotalRuns > 5:
		sb.WriteString("**Moderate engagement level.** ")
	default:
		sb.WriteString("**Low activity detected.** ")
	}
	dailyAverage := float64(p.TotalRuns) / float64(p.PeriodDays)
	fmt.Fprintf(&sb, "Over the past %d days, you've executed code %d times (%.1f per day average) "+
		"across %d unique problems.\n\n", p.PeriodDays, p.TotalRuns, dailyAverage, p.TotalProblems)

	sb.WriteString("### **Technical Versatility**\n")
	switch {
	case len(p.LanguagesUsed) > 2:
		fmt.Fprintf(&sb, "**Strong multi-language proficiency!** You've demonstrated versatility across "+
			"%d programming languages: %s. This breadth shows adaptability and comprehensive "+
			"programming knowledge. Your primary focus on %s while maintaining other languages "+
			"shows balanced skill development.\n\n",
			len(p.LanguagesUsed), strings.Join(p.LanguagesUsed, ", "), p.MostUsedLanguage)
	case len(p.LanguagesUsed) > 1:
		fmt.Fprintf(&sb, "**Good language diversity.** You're working with %s, showing flexibility in "+
			"your technical approach. Consider exploring additional languages to broaden your "+
			"problem-solving toolkit.\n\n", strings.Join(p.LanguagesUsed, " and "))
	default:
		fmt.Fprintf(&sb, "**Focused specialization** in %s. While deep expertise is valuable, exploring "+
			"other languages like Python, Java, or C++ could enhance your problem-solving "+
			"perspectives and career opportunities.\n\n", p.MostUsedLanguage)
	}

	sb.WriteString("### **Problem Domain Coverage**\n")
	switch {
	case len(p.ProblemCategories) > 4:
		fmt.Fprintf(&sb, "**Excellent problem diversity!** You're tackling %d different problem "+
			"categories: %s. This breadth demonstrates strong algorithmic thinking across "+
			"multiple domains.\n\n", len(p.ProblemCategories), topCategories(p.ProblemCategories, 5))
	case len(p.ProblemCategories) > 2:
		fmt.Fprintf(&sb, "**Good problem variety.** You're working on %d categories, showing solid "+
			"foundational coverage. Consider expanding into areas like Dynamic Programming, "+
			"Graph algorithms, or System Design for comprehensive growth.\n\n", len(p.ProblemCategories))
	default:
		sb.WriteString("**Limited problem scope detected.** Expanding beyond your current focus areas " +
			"will significantly enhance your algorithmic skills. Target categories like Arrays, " +
			"Strings, Trees, Graphs, and Dynamic Programming for well-rounded development.\n\n")
	}

	sb.WriteString("### **Key Strengths Identified**\n")
	fmt.Fprintf(&sb, "Your analysis reveals these core strengths: %s. Building on these foundations "+
		"will accelerate your development significantly.\n\n", strengths(p))

	sb.WriteString("---\n")
	sb.WriteString("*This analysis uses heuristic evaluation of your coding patterns. " +
		"For AI-powered insights with deeper code analysis, ensure your API configuration is active.*")

	return sb.String()
}

// FormatCategoryCounts renders every category as "Name (count)" pairs,
// sorted by count descending with name as tie-break.
func FormatCategoryCounts(categories map[string]int) string {
	return topCategories(categories, len(categories))
}

// topCategories renders the n highest-count categories as "Name (count)"
// pairs, sorted by count descending with name as tie-break.
func topCategories(categories map[string]int, n int) string {
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
	if len(entries) > n {
		entries = entries[:n]
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s (%d)", e.name, e.count))
	}
	return strings.Join(parts, ", ")
}

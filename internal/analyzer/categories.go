package analyzer

import "strings"

// CategoryOther is assigned when no keyword rule matches a title.
const CategoryOther = "Other"

// categoryRules maps title keywords to problem categories. Order matters:
// the first rule with a matching keyword wins, so a title like
// "Binary Tree Array" lands in Array, not Tree.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{"Array", []string{"array", "list"}},
	{"String", []string{"string"}},
	{"Tree", []string{"tree", "binary"}},
	{"Graph", []string{"graph", "bfs", "dfs"}},
	{"Dynamic Programming", []string{"dynamic", "dp"}},
	{"Sorting", []string{"sort"}},
	{"Hash Table", []string{"hash", "map"}},
}

// Categorize assigns a problem category from a title by case-insensitive
// substring match. Every non-empty title maps to exactly one category.
func Categorize(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

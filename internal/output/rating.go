package output

import (
	"fmt"
	"strings"
)

// RatingBar renders a visual bar for a 1-5 rating.
// Example: "████████░░ 4.0/5"
func RatingBar(rating float64, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := int((rating / 5.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case rating >= 3.5:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case rating >= 2.5:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.1f/5", rating)))
}

// TrendArrow returns a styled trend indicator for a rating delta between two
// analyses. Positive delta shows an up arrow, negative shows down, zero shows
// a dash.
func TrendArrow(delta float64) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}
	if delta > 0 {
		return StyleSuccess.Render(fmt.Sprintf("▲ +%.1f", delta))
	}
	return StyleError.Render(fmt.Sprintf("▼ %.1f", delta))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

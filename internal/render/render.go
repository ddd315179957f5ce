// Package render formats analysis output for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/pwscore/internal/analyzer"
)

const ruleWidth = 35

const (
	secureStatus = "💪 Your password is reasonably secure."
	weakStatus   = "⚠️ Needs improvement. Recommendations:"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
)

var ratingStyles = map[analyzer.Rating]lipgloss.Style{
	analyzer.RatingStrong:   okStyle.Bold(true),
	analyzer.RatingGood:     okStyle,
	analyzer.RatingModerate: warnStyle,
	analyzer.RatingWeak:     criticalStyle.UnsetBold(),
	analyzer.RatingVeryWeak: criticalStyle,
}

// Rule returns the horizontal separator line.
func Rule() string {
	return mutedStyle.Render(strings.Repeat("-", ruleWidth))
}

// Banner returns the startup header.
func Banner(minScore int) string {
	lines := []string{
		titleStyle.Render("--- Password Strength Analyzer ---"),
		fmt.Sprintf("Goal: Achieve a score of %d for a 'Strong' rating.", minScore),
		Rule(),
	}
	return strings.Join(lines, "\n")
}

// RatingText styles a rating label.
func RatingText(r analyzer.Rating) string {
	style, ok := ratingStyles[r]
	if !ok {
		return r.String()
	}
	return style.Render(r.String())
}

// Result renders an analysis result. Feedback is listed only when the rating
// is not acceptable.
func Result(res analyzer.Result) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("[ Analysis Result ]"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "SCORE: %s\n", scoreStyle.Render(fmt.Sprintf("%d", res.Score)))
	fmt.Fprintf(&b, "RATING: %s\n\n", RatingText(res.Rating))
	if res.Rating.Acceptable() {
		b.WriteString("Status: " + okStyle.Render(secureStatus))
		b.WriteString("\n")
	} else {
		b.WriteString("Status: " + warnStyle.Render(weakStatus))
		b.WriteString("\n")
		for _, item := range res.Feedback {
			b.WriteString("  - " + feedbackStyle(item).Render(item))
			b.WriteString("\n")
		}
	}
	b.WriteString(Rule())
	return b.String()
}

func feedbackStyle(line string) lipgloss.Style {
	if strings.HasPrefix(strings.ToUpper(line), "CRITICAL") {
		return criticalStyle
	}
	return lipgloss.NewStyle()
}

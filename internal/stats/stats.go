// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/verte-zerg/pwscore/internal/analyzer"
	"github.com/verte-zerg/pwscore/internal/model"
)

const sparkLevels = " .:-=+*#%@"

// MovingAverage returns, for each point, the mean of it and up to window-1
// points before it. A window of 1 or less returns a copy.
func MovingAverage(values []float64, window int) []float64 {
	window = max(window, 1)
	prefix := make([]float64, len(values)+1)
	for i, v := range values {
		prefix[i+1] = prefix[i] + v
	}
	out := make([]float64, len(values))
	for i := range values {
		lo := max(0, i+1-window)
		out[i] = (prefix[i+1] - prefix[lo]) / float64(i+1-lo)
	}
	return out
}

// Sparkline maps values onto ASCII levels between their minimum and maximum.
// A flat series renders at the middle level.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := slices.Min(values), slices.Max(values)
	top := len(sparkLevels) - 1
	out := make([]byte, len(values))
	for i, v := range values {
		level := top / 2
		if span := hi - lo; span > 1e-9 {
			level = int(math.Round((v - lo) / span * float64(top)))
		}
		out[i] = sparkLevels[level]
	}
	return string(out)
}

// RenderSummary prints totals for the selected checks.
func RenderSummary(w io.Writer, checks []model.CheckRecord) error {
	if len(checks) == 0 {
		_, err := fmt.Fprintln(w, "No checks recorded. Run with --record to keep history.")
		return err
	}
	total := 0
	best := 0
	for _, c := range checks {
		total += c.Score
		best = max(best, c.Score)
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Checks: %d", len(checks)),
		fmt.Sprintf("Avg Score: %.1f / %d", float64(total)/float64(len(checks)), analyzer.MaxScore),
		fmt.Sprintf("Best Score: %d", best),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderRatingTable prints how many checks landed in each rating.
func RenderRatingTable(w io.Writer, aggs []model.RatingAggregate) error {
	total := 0
	for _, agg := range aggs {
		total += agg.Count
	}
	if total == 0 {
		return nil
	}
	headers := []string{"Rating", "Checks", "Share", "Avg Score"}
	rows := make([][]string, 0, len(aggs))
	for _, agg := range aggs {
		avg := 0.0
		if agg.Count > 0 {
			avg = float64(agg.ScoreSum) / float64(agg.Count)
		}
		rows = append(rows, []string{
			agg.Rating,
			fmt.Sprintf("%d", agg.Count),
			fmt.Sprintf("%.1f%%", float64(agg.Count)/float64(total)*100),
			fmt.Sprintf("%.1f", avg),
		})
	}
	if _, err := fmt.Fprintln(w, "Ratings"); err != nil {
		return err
	}
	tbl := table{headers: headers, rows: rows, rightAlign: map[int]bool{1: true, 2: true, 3: true}}
	for _, line := range tbl.lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderTrend prints a smoothed sparkline of scores, oldest first.
func RenderTrend(w io.Writer, checks []model.CheckRecord, window int) error {
	if len(checks) == 0 {
		return nil
	}
	scores := make([]float64, len(checks))
	for i, c := range checks {
		scores[i] = float64(c.Score)
	}
	smoothed := MovingAverage(scores, window)
	if _, err := fmt.Fprintf(w, "Score Trend (window %d)\n", window); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "[%s] latest %.1f\n", Sparkline(smoothed), smoothed[len(smoothed)-1])
	return err
}

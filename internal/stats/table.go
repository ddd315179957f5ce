package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// table lays out text in space-separated columns sized to their widest
// cell. Every row has exactly len(headers) cells.
type table struct {
	headers    []string
	rows       [][]string
	rightAlign map[int]bool
}

func (t table) lines() []string {
	if len(t.headers) == 0 {
		return nil
	}
	widths := make([]int, len(t.headers))
	all := append([][]string{t.headers}, t.rows...)
	for _, row := range all {
		for i := range widths {
			widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
		}
	}

	out := make([]string, 0, len(all))
	cells := make([]string, len(widths))
	for _, row := range all {
		for i, w := range widths {
			if t.rightAlign[i] {
				cells[i] = runewidth.FillLeft(row[i], w)
			} else {
				cells[i] = runewidth.FillRight(row[i], w)
			}
		}
		out = append(out, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return out
}

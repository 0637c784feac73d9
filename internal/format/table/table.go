// Package table pads rows of cells into aligned columns for fixed-width
// terminal output.
package table

import "strings"

// Format returns the rows left-aligned and padded to the widest entry in
// each column, with a two-space gutter.
func Format(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			for len(widths) <= c {
				widths = append(widths, 0)
			}
			if w := len([]rune(cell)); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if c < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[c]-len([]rune(cell))))
			}
		}
		out[i] = b.String()
	}
	return out
}

package views

import (
	"strings"

	"github.com/ethanuppal/kegtui/internal/theme"
)

var styles = theme.Default()

const (
	selectedPrefix = ">> "
	itemPrefix     = "   "
)

// humanList joins items into readable English ("a", "a or b", "a, b, or c").
func humanList(items []string) string {
	switch len(items) {
	case 0:
		return "the configured search paths"
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
	}
}

// window returns at most height lines starting at offset, clamped to the
// slice. Scroll offsets past the end show the final page instead of nothing.
func window(lines []string, offset, height int) []string {
	if height <= 0 || len(lines) == 0 {
		return nil
	}
	max := len(lines) - height
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[offset:end]
}

// windowStart picks the scroll offset that keeps the cursor row visible.
func windowStart(cursor, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	if cursor < height {
		return 0
	}
	return cursor - height + 1
}

// Package overlay composes floating boxes over rendered views.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws box over base with its top-left corner at column x, row y.
// Both strings may contain ANSI styling. Base lines shorter than the box
// are padded; box lines falling outside base are dropped.
func Place(base, box string, x, y int) string {
	if box == "" {
		return base
	}
	x = max(x, 0)
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")

	for i, boxLine := range boxLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		boxWidth := ansi.StringWidth(boxLine)
		if boxWidth == 0 {
			continue
		}

		line := baseLines[row]
		lineWidth := ansi.StringWidth(line)
		if lineWidth < x+boxWidth {
			line += strings.Repeat(" ", x+boxWidth-lineWidth)
			lineWidth = x + boxWidth
		}

		result := ansi.Cut(line, 0, x) + boxLine
		if end := x + boxWidth; end < lineWidth {
			result += ansi.Cut(line, end, lineWidth)
		}
		baseLines[row] = result
	}

	return strings.Join(baseLines, "\n")
}

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// gray stands in for theme colors that are not hex (ANSI palette indexes).
var gray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Title renders the application name in bold, shaded from the theme's
// primary color to its secondary one.
func Title(text string) string {
	return gradient(text, hexColor(T().Primary), hexColor(T().Secondary))
}

// Pulse blends c toward the panel background by amount (0 = c, 1 =
// background). Markers breathe by cycling amount.
func Pulse(c colorful.Color, amount float64) lipgloss.Color {
	amount = min(max(amount, 0), 1)
	return lipgloss.Color(c.BlendHcl(hexColor(T().BgBase), amount).Clamped().Hex())
}

// gradient colors each grapheme cluster of text along an HCL ramp.
func gradient(text string, from, to colorful.Color) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	var b strings.Builder
	for i, c := range ramp(len(clusters), from, to) {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex()))
		b.WriteString(style.Render(clusters[i]))
	}
	return b.String()
}

// ramp returns n colors evenly spaced from from to to. A single color is
// from itself.
func ramp(n int, from, to colorful.Color) []colorful.Color {
	colors := make([]colorful.Color, n)
	for i := range n {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = from.BlendHcl(to, t).Clamped()
	}
	return colors
}

func hexColor(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return gray
	}
	return col
}

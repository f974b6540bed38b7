package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered panel style. The active panel (the map
// while hovering a marker, the transport while a clip is loaded) gets the
// accent border.
func PanelStyle(active bool) lipgloss.Style {
	t := T()
	border := t.Border
	if active {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// internal/app/layout.go
package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/soundearth/internal/icons"
	"github.com/llehouerou/soundearth/internal/ui/transport"
)

// Screen rows, top to bottom: header, map, transport panel, footer.
const (
	headerHeight = 1
	footerHeight = 1
	mapTop       = headerHeight
)

const dismissLabel = "[x]"

func installLabel() string {
	return "[" + icons.FormatLocation(icons.Install(), "Install SoundEarth") + "]"
}

// mapHeight is the number of rows left for the map.
func (m Model) mapHeight() int {
	return max(m.Height-headerHeight-transport.Height-footerHeight, 0)
}

// transportTop is the first row of the transport panel.
func (m Model) transportTop() int {
	return mapTop + m.mapHeight()
}

// installShown reports whether the header carries the install buttons.
func (m Model) installShown() bool {
	return m.Install != nil && m.Install.Available()
}

// installSpans returns the header columns [start, end) of the install and
// dismiss buttons.
func (m Model) installSpans() (install, dismiss [2]int) {
	iw := lipgloss.Width(installLabel())
	dw := lipgloss.Width(dismissLabel)
	start := m.Width - iw - 1 - dw - 1
	install = [2]int{start, start + iw}
	dismiss = [2]int{install[1] + 1, install[1] + 1 + dw}
	return install, dismiss
}

func inSpan(s [2]int, x int) bool {
	return x >= s[0] && x < s[1]
}

package worldmap

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/soundearth/internal/icons"
)

// pulseSteps is the number of Tick calls per pulse cycle.
const pulseSteps = 12

// AddMarker places a marker and returns its index. onClick runs when the
// marker is clicked; it may be nil.
func (m *Map) AddMarker(lat, lng float64, style MarkerStyle, onClick func()) int {
	m.markers = append(m.markers, marker{
		pos:     LatLng{Lat: lat, Lng: lng},
		style:   style,
		onClick: onClick,
	})
	return len(m.markers) - 1
}

// ClearMarkers removes every marker.
func (m *Map) ClearMarkers() {
	m.markers = nil
	m.hovered = -1
	m.active = -1
}

// MarkerCount returns the number of markers.
func (m *Map) MarkerCount() int {
	return len(m.markers)
}

// SetActive highlights marker i with the pulse animation. -1 clears it.
func (m *Map) SetActive(i int) {
	if i < 0 || i >= len(m.markers) {
		i = -1
	}
	if i != m.active {
		m.phase = 0
	}
	m.active = i
}

// SetMissing flags marker i as having no clip to play. Missing markers are
// drawn dimmed and their popup says so.
func (m *Map) SetMissing(i int, missing bool) {
	if i < 0 || i >= len(m.markers) {
		return
	}
	m.markers[i].missing = missing
}

// Missing reports whether marker i was flagged by SetMissing.
func (m *Map) Missing(i int) bool {
	return i >= 0 && i < len(m.markers) && m.markers[i].missing
}

// Active returns the pulsing marker, or -1.
func (m *Map) Active() int {
	return m.active
}

// Tick advances the pulse animation by one step.
func (m *Map) Tick() {
	if m.active < 0 {
		return
	}
	m.phase = math.Mod(m.phase+2*math.Pi/pulseSteps, 2*math.Pi)
}

// pulseAmount is how far the active marker is faded toward the background.
func (m *Map) pulseAmount() float64 {
	return 0.3 * (1 - math.Cos(m.phase))
}

func markerGlyph() string {
	return icons.Marker()
}

// markerCells returns where each marker is drawn, in draw order. Markers
// outside the view are omitted. The active marker is drawn last so it stays
// on top.
func (m *Map) markerCells() []placed {
	var cells []placed
	w := lipgloss.Width(markerGlyph())
	add := func(i int) {
		mk := m.markers[i]
		x, y, ok := m.Project(mk.pos.Lat, mk.pos.Lng)
		if !ok {
			return
		}
		x = min(x, m.width-w)
		cells = append(cells, placed{index: i, x: x, y: y, width: w})
	}
	for i := range m.markers {
		if i != m.active {
			add(i)
		}
	}
	if m.active >= 0 {
		add(m.active)
	}
	return cells
}

type placed struct {
	index int
	x, y  int
	width int
}

// MarkerAt returns the topmost marker drawn at cell (x, y), or -1. A click
// one column to either side still counts, markers being a single cell wide.
func (m *Map) MarkerAt(x, y int) int {
	cells := m.markerCells()
	for _, slack := range []int{0, 1} {
		for i := len(cells) - 1; i >= 0; i-- {
			c := cells[i]
			if y == c.y && x >= c.x-slack && x < c.x+c.width+slack {
				return c.index
			}
		}
	}
	return -1
}

// Click runs the handler of the marker at (x, y). It returns false when
// no marker is there.
func (m *Map) Click(x, y int) bool {
	i := m.MarkerAt(x, y)
	if i < 0 {
		return false
	}
	if h := m.markers[i].onClick; h != nil {
		h()
	}
	return true
}

// Hover updates the hovered marker from the pointer position and reports
// whether it changed. Pass (-1, -1) when the pointer leaves the map.
func (m *Map) Hover(x, y int) bool {
	i := -1
	if x >= 0 && y >= 0 {
		i = m.MarkerAt(x, y)
	}
	if i == m.hovered {
		return false
	}
	m.hovered = i
	return true
}

// Hovered returns the hovered marker, or -1.
func (m *Map) Hovered() int {
	return m.hovered
}

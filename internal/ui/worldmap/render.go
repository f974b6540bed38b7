package worldmap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/soundearth/internal/icons"
	"github.com/llehouerou/soundearth/internal/ui/overlay"
	"github.com/llehouerou/soundearth/internal/ui/render"
	"github.com/llehouerou/soundearth/internal/ui/styles"
)

const (
	landGlyph  = "▓"
	oceanGlyph = "·"
)

// PopupHint is the second line of the hover popup.
const PopupHint = "Click to play"

// MissingHint replaces PopupHint on a marker whose clip is missing.
const MissingHint = "Clip not found"

// View renders the map, markers and the hover popup. It returns an empty
// string until the map has a usable size.
func (m *Map) View() string {
	if !m.Ready() {
		return ""
	}

	at := make(map[[2]int]placed)
	for _, c := range m.markerCells() {
		at[[2]int{c.x, c.y}] = c
	}

	st := styles.T().S()
	lines := make([]string, m.height)
	for y := range m.height {
		var (
			b       strings.Builder
			run     strings.Builder
			runLand bool
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runLand {
				b.WriteString(st.Land.Render(run.String()))
			} else {
				b.WriteString(st.Ocean.Render(run.String()))
			}
			run.Reset()
		}

		for x := 0; x < m.width; {
			if c, ok := at[[2]int{x, y}]; ok {
				flush()
				b.WriteString(m.markerStyle(c.index).Render(markerGlyph()))
				x += c.width
				continue
			}
			p := m.Unproject(x, y)
			land := m.base.Land(p.Lat, p.Lng)
			if land != runLand {
				flush()
				runLand = land
			}
			if land {
				run.WriteString(landGlyph)
			} else {
				run.WriteString(oceanGlyph)
			}
			x++
		}
		flush()
		lines[y] = b.String()
	}

	view := strings.Join(lines, "\n")
	if m.hovered >= 0 && m.hovered < len(m.markers) {
		view = m.placePopup(view)
	}
	return view
}

func (m *Map) markerStyle(i int) lipgloss.Style {
	mk := m.markers[i]
	style := lipgloss.NewStyle().Bold(true)
	if i == m.active {
		return style.Foreground(styles.Pulse(mk.style.Color, m.pulseAmount()))
	}
	if mk.missing {
		style = style.Foreground(styles.T().FgSubtle).Bold(false)
	} else {
		style = style.Foreground(lipgloss.Color(mk.style.Color.Clamped().Hex()))
	}
	if i == m.hovered {
		style = style.Background(styles.T().BgPopup)
	}
	return style
}

// Popup renders the hover box for marker i.
func (m *Map) Popup(i int) string {
	if i < 0 || i >= len(m.markers) {
		return ""
	}
	mk := m.markers[i]
	st := styles.T().S()
	title := render.Sanitize(icons.FormatLocation(mk.style.Icon, mk.style.Title))
	hint := st.Muted.Render(PopupHint)
	if mk.missing {
		hint = st.Warning.Render(MissingHint)
	}
	return st.Popup.Render(st.Title.Render(title) + "\n" + hint)
}

// placePopup draws the hovered marker's popup above it, or below when
// there is no room, clamped to the map.
func (m *Map) placePopup(view string) string {
	mk := m.markers[m.hovered]
	x, y, ok := m.Project(mk.pos.Lat, mk.pos.Lng)
	if !ok {
		return view
	}
	box := m.Popup(m.hovered)
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)

	px := min(max(x-bw/2, 0), max(m.width-bw, 0))
	py := y - bh
	if py < 0 {
		py = y + 1
	}
	return overlay.Place(view, box, px, py)
}

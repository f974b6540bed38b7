// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/soundearth/internal/icons"
	"github.com/llehouerou/soundearth/internal/keymap"
	"github.com/llehouerou/soundearth/internal/ui/overlay"
	"github.com/llehouerou/soundearth/internal/ui/render"
	"github.com/llehouerou/soundearth/internal/ui/styles"
)

const footerHint = "space play/pause · n/p next/prev · 1-9 jump · ? help · q quit"

// MapFailureText is shown in place of the map when it cannot be drawn.
const MapFailureText = "The map could not be displayed."

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := strings.Join([]string{
		m.renderHeader(),
		m.renderMap(),
		m.Transport.View(),
		m.renderFooter(),
	}, "\n")

	if m.ShowHelp {
		box := m.renderHelp()
		x := max((m.Width-lipgloss.Width(box))/2, 0)
		y := mapTop + max((m.mapHeight()-lipgloss.Height(box))/2, 0)
		view = overlay.Place(view, box, x, y)
	}
	return view
}

func (m Model) renderHeader() string {
	st := styles.T().S()
	title := " " + styles.Title("SoundEarth")
	left := title + st.Subtle.Render("  ? help")

	right := ""
	if m.installShown() {
		right = st.Button.Render(installLabel()) + " " + st.Muted.Render(dismissLabel) + " "
	}
	return render.Row(left, right, m.Width)
}

func (m Model) renderMap() string {
	h := m.mapHeight()
	if h == 0 {
		return ""
	}
	if !m.MapFailed() {
		return m.Map.View()
	}

	st := styles.T().S()
	panel := strings.Join([]string{
		st.Error.Render(icons.FormatLocation(icons.Error(), "Map unavailable")),
		st.Muted.Render(MapFailureText),
		st.Muted.Render("Press r to reload"),
	}, "\n")
	return render.Center(panel, m.Width, h)
}

func (m Model) renderFooter() string {
	st := styles.T().S()
	if m.ErrorMsg != "" {
		return st.Error.Render(render.Truncate(" "+m.ErrorMsg, m.Width))
	}
	if n := len(m.missing); n > 0 {
		text := english.Plural(n, "clip", "") + " not found · " + footerHint
		return st.Warning.Render(render.Truncate(" "+text, m.Width))
	}
	return st.Subtle.Render(render.Truncate(" "+footerHint, m.Width))
}

// renderHelp lists every binding, grouped by context.
func (m Model) renderHelp() string {
	st := styles.T().S()
	contexts := []struct{ name, title string }{
		{"global", "General"},
		{"playback", "Playback"},
		{"locations", "Locations"},
	}

	var lines []string
	for i, c := range contexts {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, st.Title.Render(c.title))
		if c.name == "locations" {
			lines = append(lines, m.locationHelp()...)
			continue
		}
		for _, b := range keymap.ByContext(c.name) {
			lines = append(lines, helpLine(m.Keys.Label(b.Action), b.Description))
		}
	}
	return st.Popup.Render(strings.Join(lines, "\n"))
}

// locationHelp names the location behind each number key.
func (m Model) locationHelp() []string {
	var lines []string
	for _, b := range keymap.ByContext("locations") {
		loc, ok := m.ctrl.Registry().At(m.Keys.Resolve(b.Keys[0]).Location)
		if !ok {
			break
		}
		lines = append(lines, helpLine(m.Keys.Label(b.Action), icons.FormatLocation(loc.Icon, loc.Name)))
	}
	return lines
}

func helpLine(keys, description string) string {
	return render.Pad(keys, 14) + styles.T().S().Muted.Render(render.Sanitize(description))
}

// internal/app/mouse.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundearth/internal/ui/transport"
)

// handleMouse routes a mouse event to the header, the map or the transport
// panel by row. A scrub in progress keeps every event until release.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if press && m.output != nil {
		m.output.Activate()
	}

	top := m.transportTop()
	if m.Scrub.Scrubbing() {
		m.Scrub.HandleMouse(relative(msg, top), m.Transport.Track())
		return m, nil
	}

	switch {
	case msg.Y < mapTop:
		m.Map.Hover(-1, -1)
		if press {
			m.handleHeaderClick(msg.X)
		}

	case msg.Y < top:
		if m.MapFailed() {
			return m, nil
		}
		x, y := msg.X, msg.Y-mapTop
		if msg.Action == tea.MouseActionMotion {
			m.Map.Hover(x, y)
		}
		if press {
			m.Map.Click(x, y)
		}

	case msg.Y < top+transport.Height:
		m.Map.Hover(-1, -1)
		if !press {
			return m, nil
		}
		rel := relative(msg, top)
		if m.Scrub.HandleMouse(rel, m.Transport.Track()) {
			return m, nil
		}
		m.pressButton(m.Transport.ButtonAt(rel.X, rel.Y))

	default:
		m.Map.Hover(-1, -1)
	}
	return m, nil
}

// relative shifts msg into the coordinates of a panel starting at row top.
func relative(msg tea.MouseMsg, top int) tea.MouseMsg {
	msg.Y -= top
	return msg
}

func (m *Model) handleHeaderClick(x int) {
	if !m.installShown() {
		return
	}
	install, dismiss := m.installSpans()
	switch {
	case inSpan(install, x):
		m.acceptInstall()
	case inSpan(dismiss, x):
		m.Install.Decline()
	}
}

func (m *Model) pressButton(b transport.Button) {
	switch b {
	case transport.ButtonPrevious:
		_ = m.ctrl.Previous()
	case transport.ButtonPlayPause:
		m.playPause()
	case transport.ButtonStop:
		m.ctrl.Stop()
	case transport.ButtonNext:
		_ = m.ctrl.Next()
	case transport.ButtonNone:
	}
}

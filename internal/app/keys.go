// internal/app/keys.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundearth/internal/errmsg"
	"github.com/llehouerou/soundearth/internal/keymap"
)

const (
	seekStep   = 5 * time.Second
	volumeStep = 0.1
)

// handleKey resolves a key press to an action. Every key counts as a user
// gesture for the autoplay policy.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.output != nil {
		m.output.Activate()
	}

	key := msg.String()
	cmd := m.Keys.Resolve(key)

	if m.ShowHelp && (key == "esc" || cmd.Action == keymap.ActionHelp) {
		m.ShowHelp = false
		return m, nil
	}

	if cmd.Select() {
		if cmd.Location < m.ctrl.Registry().Len() {
			_ = m.ctrl.SelectLocation(cmd.Location)
		}
		return m, nil
	}

	switch cmd.Action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
	case keymap.ActionInstall:
		m.acceptInstall()
	case keymap.ActionReloadMap:
		return m, reloadMapCmd(m.tilesPath)
	case keymap.ActionPlayPause:
		m.playPause()
	case keymap.ActionStop:
		m.ctrl.Stop()
	case keymap.ActionNext:
		_ = m.ctrl.Next()
	case keymap.ActionPrevious:
		_ = m.ctrl.Previous()
	case keymap.ActionSeekForward:
		m.ctrl.SeekTo(m.ctrl.State().Position + seekStep)
	case keymap.ActionSeekBack:
		m.ctrl.SeekTo(m.ctrl.State().Position - seekStep)
	case keymap.ActionSeekStart:
		m.ctrl.Seek(0)
	case keymap.ActionVolumeUp:
		m.changeVolume(volumeStep)
	case keymap.ActionVolumeDown:
		m.changeVolume(-volumeStep)
	case keymap.ActionMute:
		if m.output != nil {
			m.output.SetMuted(!m.output.Muted())
			m.syncVolume()
		}
	}
	return m, nil
}

// changeVolume steps the level and unmutes.
func (m *Model) changeVolume(delta float64) {
	if m.output == nil {
		return
	}
	m.output.SetMuted(false)
	m.output.SetVolume(m.output.Volume() + delta)
	m.syncVolume()
}

func (m *Model) syncVolume() {
	if m.output == nil {
		return
	}
	m.Transport.SetVolume(m.output.Volume(), m.output.Muted())
}

// playPause toggles the current clip, or starts the first location when
// nothing has been picked yet.
func (m *Model) playPause() {
	if !m.ctrl.State().HasSelection() {
		_ = m.ctrl.Next()
		return
	}
	_ = m.ctrl.Toggle()
}

// acceptInstall writes the desktop entry and hides the install buttons.
func (m *Model) acceptInstall() {
	if !m.installShown() {
		return
	}
	if err := m.Install.Accept(); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpInstall, err)
		m.log.Error("install desktop entry", "path", m.Install.Path(), "err", err)
		return
	}
	m.log.Info("desktop entry installed", "path", m.Install.Path())
}

// internal/app/update.go
package app

import (
	"errors"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundearth/internal/errmsg"
	"github.com/llehouerou/soundearth/internal/playback"
	"github.com/llehouerou/soundearth/internal/ui/worldmap"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		m.Scrub.Leave()
		m.Map.Hover(-1, -1)
		return m, nil

	case ControllerMessage:
		return m.handleControllerMsg(msg)

	case PulseTickMsg:
		m.Map.Tick()
		// The level can also change over D-Bus.
		m.syncVolume()
		return m, PulseTickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Transport, cmd = m.Transport.Update(msg)
		return m, cmd

	case ClipInfoMsg:
		if msg.Index != m.ctrl.State().Selected {
			return m, nil
		}
		if msg.Err != nil {
			m.log.Debug("read clip tags", "index", msg.Index, "err", msg.Err)
			return m, nil
		}
		m.Transport.SetClipInfo(msg.Info)
		return m, nil

	case ClipsCheckedMsg:
		m.missing = msg.Missing
		reg := m.ctrl.Registry()
		for _, c := range msg.Missing {
			loc, _ := reg.At(c.Index)
			m.log.Warn("clip missing", "name", loc.Name, "path", c.Path, "err", c.Err)
			m.Map.SetMissing(c.Index, true)
		}
		return m, nil

	case MapReloadedMsg:
		return m.handleMapReloaded(msg)

	case StderrMsg:
		m.ErrorMsg = "Audio: " + msg.Line
		return m, WatchStderr()

	case NotifyDoneMsg:
		if msg.Err != nil {
			m.log.Warn(errmsg.Format(errmsg.OpNotify, msg.Err))
		}
		return m, nil
	}
	return m, nil
}

// handleWindowSize lays out the map and transport for the new size. A
// window too small for the map replaces it with the failure panel until
// the window grows again.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Transport.SetWidth(msg.Width)

	err := m.Map.SetSize(msg.Width, m.mapHeight())
	switch {
	case err != nil:
		if m.mapErr == nil {
			m.log.Warn("map container", "err", err)
		}
		m.mapErr = err
	case errors.Is(m.mapErr, worldmap.ErrContainer):
		m.mapErr = nil
	}
	return m, nil
}

func (m Model) handleMapReloaded(msg MapReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.mapErr = msg.Err
		m.ErrorMsg = errmsg.Format(errmsg.OpMapReload, msg.Err)
		m.log.Error("reload map", "path", m.tilesPath, "err", msg.Err)
		return m, nil
	}
	m.Map.SetBasemap(msg.Basemap)
	if err := m.Map.SetSize(m.Width, m.mapHeight()); err != nil {
		m.mapErr = err
		m.ErrorMsg = errmsg.Format(errmsg.OpMapReload, err)
		return m, nil
	}
	m.mapErr = nil
	m.ErrorMsg = ""
	m.log.Info("map reloaded", "path", m.tilesPath)
	return m, nil
}

// handleControllerMsg applies a relayed controller event and keeps the
// subscription watched.
func (m Model) handleControllerMsg(msg ControllerMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StateChangedMsg:
		cmd := m.Transport.SetState(msg.Current)
		m.syncActiveMarker(msg.Current)
		if msg.Current.Playing && !msg.Previous.Playing {
			m.ErrorMsg = ""
		}
		// The controller ends a drag itself on stop or a new selection.
		if m.Scrub.Scrubbing() && !m.ctrl.State().Scrubbing {
			m.Scrub.Reset()
		}
		var dismiss tea.Cmd
		if stopped(msg.Previous, msg.Current) {
			dismiss = dismissCmd(m.announcer)
		}
		return m, tea.Batch(cmd, dismiss, m.WatchControllerEvents())

	case LocationChangedMsg:
		m.ErrorMsg = ""
		return m, tea.Batch(
			readClipInfoCmd(msg.Index, msg.Path),
			announceCmd(m.announcer, msg.Location),
			m.WatchControllerEvents(),
		)

	case ControllerErrorMsg:
		clip := ""
		if msg.Path != "" {
			clip = filepath.Base(msg.Path)
		}
		m.ErrorMsg = errmsg.FormatWith(errorOp(msg.Operation), clip, msg.Err)
		return m, m.WatchControllerEvents()

	case ControllerClosedMsg:
		return m, nil
	}
	return m, nil
}

// syncActiveMarker pulses the selected marker while its clip is in the
// player view.
func (m *Model) syncActiveMarker(s playback.State) {
	if s.View == playback.ViewPlayer {
		m.Map.SetActive(s.Selected)
	} else {
		m.Map.SetActive(-1)
	}
}

// stopped reports a transition from the player view back to idle by Stop.
func stopped(prev, cur playback.State) bool {
	return prev.View == playback.ViewPlayer && cur.View == playback.ViewIdle && cur.Status == playback.StatusIdle
}

func errorOp(operation string) errmsg.Op {
	switch operation {
	case "select":
		return errmsg.OpSelect
	case "play":
		return errmsg.OpPlaybackStart
	default:
		return errmsg.OpAudioLoad
	}
}

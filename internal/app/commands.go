// internal/app/commands.go
package app

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundearth/internal/location"
	"github.com/llehouerou/soundearth/internal/player"
	"github.com/llehouerou/soundearth/internal/stderr"
	"github.com/llehouerou/soundearth/internal/ui/worldmap"
)

const pulseInterval = 150 * time.Millisecond

// WatchControllerEvents returns a command that waits for the next event
// on the controller subscription.
func (m Model) WatchControllerEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.LocationChanged:
			return LocationChangedMsg(e)
		case e := <-sub.Error:
			return ControllerErrorMsg(e)
		case <-sub.Done:
			return ControllerClosedMsg{}
		}
	}
}

// WatchStderr returns a command that waits for output captured from the
// audio backend.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}

// PulseTickCmd schedules the next marker pulse frame.
func PulseTickCmd() tea.Cmd {
	return tea.Tick(pulseInterval, func(_ time.Time) tea.Msg {
		return PulseTickMsg{}
	})
}

// readClipInfoCmd reads the tags of the clip at path.
func readClipInfoCmd(index int, path string) tea.Cmd {
	return func() tea.Msg {
		info, err := player.ReadClipInfo(path)
		return ClipInfoMsg{Index: index, Info: info, Err: err}
	}
}

// checkClipsCmd looks for every location's clip so the ones that cannot
// play are known before anyone clicks them.
func checkClipsCmd(reg *location.Registry, clipPath func(location.Location) string) tea.Cmd {
	return func() tea.Msg {
		var missing []MissingClip
		for i, loc := range reg.All() {
			path := clipPath(loc)
			if _, err := os.Stat(path); err != nil {
				missing = append(missing, MissingClip{Index: i, Path: path, Err: err})
			}
		}
		return ClipsCheckedMsg{Missing: missing}
	}
}

// reloadMapCmd loads the basemap again from path (empty for the built-in).
func reloadMapCmd(path string) tea.Cmd {
	return func() tea.Msg {
		b, err := worldmap.LoadBasemap(path)
		return MapReloadedMsg{Basemap: b, Err: err}
	}
}

// announceCmd shows the "now playing" notification for loc.
func announceCmd(a Announcer, loc location.Location) tea.Cmd {
	if a == nil {
		return nil
	}
	return func() tea.Msg {
		return NotifyDoneMsg{Err: a.Announce(loc)}
	}
}

// dismissCmd withdraws the "now playing" notification.
func dismissCmd(a Announcer) tea.Cmd {
	if a == nil {
		return nil
	}
	return func() tea.Msg {
		return NotifyDoneMsg{Err: a.Dismiss()}
	}
}

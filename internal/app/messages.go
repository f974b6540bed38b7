// Package app is the root bubbletea model: the world map, the transport
// panel and everything that routes input between them.
package app

import (
	"github.com/llehouerou/soundearth/internal/playback"
	"github.com/llehouerou/soundearth/internal/player"
	"github.com/llehouerou/soundearth/internal/ui/worldmap"
)

// ControllerMessage is implemented by messages relayed from the playback
// controller's subscription.
type ControllerMessage interface {
	controllerMessage()
}

// StateChangedMsg relays a controller state change.
type StateChangedMsg playback.StateChange

func (StateChangedMsg) controllerMessage() {}

// LocationChangedMsg relays a new selection.
type LocationChangedMsg playback.LocationChange

func (LocationChangedMsg) controllerMessage() {}

// ControllerErrorMsg relays a failed controller operation.
type ControllerErrorMsg playback.ErrorEvent

func (ControllerErrorMsg) controllerMessage() {}

// ControllerClosedMsg is sent once the subscription ends.
type ControllerClosedMsg struct{}

func (ControllerClosedMsg) controllerMessage() {}

// PulseTickMsg advances the active marker's pulse.
type PulseTickMsg struct{}

// ClipInfoMsg carries the tags read from a location's clip.
type ClipInfoMsg struct {
	Index int
	Info  *player.ClipInfo
	Err   error
}

// MissingClip is a location whose clip could not be found at startup.
type MissingClip struct {
	Index int
	Path  string
	Err   error
}

// ClipsCheckedMsg carries the result of the startup clip check.
type ClipsCheckedMsg struct {
	Missing []MissingClip
}

// MapReloadedMsg carries the result of reloading the basemap.
type MapReloadedMsg struct {
	Basemap *worldmap.Basemap
	Err     error
}

// StderrMsg carries a line captured from the audio backend's stderr.
type StderrMsg struct {
	Line string
}

// NotifyDoneMsg carries the result of a desktop notification.
type NotifyDoneMsg struct {
	Err error
}

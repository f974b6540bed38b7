// internal/playback/state.go
package playback

import (
	"time"

	"github.com/llehouerou/soundearth/internal/location"
)

// NoSelection is the Selected value before any location has been picked.
const NoSelection = -1

// Status is the user-facing playback status.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusPlaying
	StatusPaused
	StatusEnded
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusLoading:
		return "Loading"
	case StatusReady:
		return "Ready"
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	case StatusEnded:
		return "Ended"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// View selects which panel the transport UI shows.
type View int

const (
	ViewIdle   View = iota // location info / "pick a marker"
	ViewPlayer             // transport controls
)

// Notice is a hint shown alongside the status.
type Notice int

const (
	NoticeNone Notice = iota
	// NoticeActivationRequired: the platform blocked autoplay; a manual
	// play is needed.
	NoticeActivationRequired
	// NoticePlayFailed: play was rejected for another reason.
	NoticePlayFailed
	// NoticeAudioError: the clip could not be loaded or decoded.
	NoticeAudioError
)

// String returns the notice name.
func (n Notice) String() string {
	switch n {
	case NoticeNone:
		return "None"
	case NoticeActivationRequired:
		return "ActivationRequired"
	case NoticePlayFailed:
		return "PlayFailed"
	case NoticeAudioError:
		return "AudioError"
	default:
		return "Unknown"
	}
}

// State is a snapshot of the controller.
//
// Selected is NoSelection or a valid registry index. Position stays within
// [0, Duration] once Duration is known.
type State struct {
	Selected  int
	Location  location.Location
	Playing   bool
	Scrubbing bool
	Position  time.Duration
	Duration  time.Duration
	Status    Status
	View      View
	Notice    Notice
	Err       error
}

// HasSelection returns true once a location has been selected.
func (s State) HasSelection() bool {
	return s.Selected != NoSelection
}

// DurationKnown returns true once the clip's metadata has arrived.
func (s State) DurationKnown() bool {
	return s.Duration > 0
}

// Progress returns Position/Duration in [0, 1], or 0 if Duration is unknown.
func (s State) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return min(max(float64(s.Position)/float64(s.Duration), 0), 1)
}

func initialState() State {
	return State{Selected: NoSelection, Status: StatusIdle, View: ViewIdle}
}

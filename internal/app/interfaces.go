package app

import (
	"time"

	"github.com/llehouerou/soundearth/internal/location"
	"github.com/llehouerou/soundearth/internal/playback"
	"github.com/llehouerou/soundearth/internal/player"
	"github.com/llehouerou/soundearth/internal/ui/scrub"
)

// Controller is the playback controller as seen by the UI.
type Controller interface {
	scrub.Seeker

	State() playback.State
	Registry() *location.Registry
	ClipPath(loc location.Location) string
	Subscribe() *playback.Subscription

	SelectLocation(i int) error
	Next() error
	Previous() error
	Toggle() error
	Stop()
	Seek(fraction float64)
	SeekTo(pos time.Duration)
}

// Output is the audio output as seen by the UI: it records user gestures
// for the autoplay policy and owns the level.
type Output interface {
	player.Mixer
	Activate()
}

// Announcer shows the location now playing outside the terminal.
type Announcer interface {
	Announce(loc location.Location) error
	Dismiss() error
}

// Verify the concrete types satisfy the UI's interfaces at compile time.
var (
	_ Controller = (*playback.Controller)(nil)
	_ Output     = (*player.Player)(nil)
)

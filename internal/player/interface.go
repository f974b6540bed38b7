// internal/player/interface.go
package player

import (
	"errors"
	"time"
)

// LoadID identifies one Load call. Every event carries the LoadID of the
// load that produced it so callers can drop events from superseded loads.
type LoadID uint64

var (
	// ErrNotAllowed is returned by Play when the autoplay policy blocks
	// playback until the user has interacted with the application.
	ErrNotAllowed = errors.New("player: playback requires user activation")

	// ErrNoSource is returned by Play when nothing is loaded.
	ErrNoSource = errors.New("player: no source loaded")

	// ErrUnsupportedFormat wraps load failures caused by the file type.
	ErrUnsupportedFormat = errors.New("player: unsupported format")
)

// Output defines the audio output contract for dependency injection and testing.
type Output interface {
	// Load starts loading path asynchronously. The outcome arrives on
	// Events as EventMetadataReady or EventError tagged with the returned ID.
	Load(path string) LoadID
	Play() error
	Pause()
	SetCurrentTime(d time.Duration)
	// Activate records a user gesture for the autoplay policy.
	Activate()
	Events() <-chan Event
	Close() error
}

// Mixer controls the output level.
type Mixer interface {
	Volume() float64
	SetVolume(level float64)
	Muted() bool
	SetMuted(muted bool)
}

// Verify Player implements Output and Mixer at compile time.
var (
	_ Output = (*Player)(nil)
	_ Mixer  = (*Player)(nil)
)

package playback

import "github.com/llehouerou/soundearth/internal/location"

// StateChange is emitted after every state mutation.
type StateChange struct {
	Previous State
	Current  State
}

// LocationChange is emitted when a new location is selected.
//
// Emitted by SelectLocation, Next, Previous and the auto-advance. Not
// emitted by transport commands on the current location.
type LocationChange struct {
	PreviousIndex int
	Index         int
	Location      location.Location
	Path          string // resolved clip path
}

// ErrorEvent is emitted when an operation fails.
type ErrorEvent struct {
	Operation string // e.g., "select", "play", "load"
	Path      string // clip path if applicable
	Err       error
}

package player

import "time"

// EventKind tags an Event.
type EventKind int

const (
	EventMetadataReady EventKind = iota
	EventTimeUpdate
	EventEnded
	EventError
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventMetadataReady:
		return "MetadataReady"
	case EventTimeUpdate:
		return "TimeUpdate"
	case EventEnded:
		return "Ended"
	case EventError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Event is emitted by an Output.
//
// Only the fields relevant to Kind are set:
//   - EventMetadataReady: Duration
//   - EventTimeUpdate:    Position
//   - EventError:         Err
type Event struct {
	Kind     EventKind
	Load     LoadID
	Duration time.Duration
	Position time.Duration
	Err      error
}

// MetadataReady builds an EventMetadataReady event.
func MetadataReady(id LoadID, d time.Duration) Event {
	return Event{Kind: EventMetadataReady, Load: id, Duration: d}
}

// TimeUpdate builds an EventTimeUpdate event.
func TimeUpdate(id LoadID, pos time.Duration) Event {
	return Event{Kind: EventTimeUpdate, Load: id, Position: pos}
}

// Ended builds an EventEnded event.
func Ended(id LoadID) Event {
	return Event{Kind: EventEnded, Load: id}
}

// Failed builds an EventError event.
func Failed(id LoadID, err error) Event {
	return Event{Kind: EventError, Load: id, Err: err}
}

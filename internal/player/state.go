// internal/player/state.go
package player

// State represents the output's transport state.
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │
//	└──────────┘                 └──────────┘
//	     ▲                          │    ▲
//	     │ load / end         pause │    │ play
//	     │                          ▼    │
//	     │                       ┌──────────┐
//	     └───────────────────────│  Paused  │
//	                             └──────────┘
//
// A fresh load always starts in Stopped; the clip only reaches the speaker
// on the first Play. When a clip runs out the output returns to Stopped
// with the position rewound, so a later Play restarts it.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a clip is playing or paused mid-way.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

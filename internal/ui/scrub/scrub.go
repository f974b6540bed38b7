// Package scrub turns pointer gestures on the progress track into seeks.
package scrub

import tea "github.com/charmbracelet/bubbletea"

// Track is the clickable progress bar, in terminal cells relative to the
// transport panel.
type Track struct {
	X, Y  int
	Width int
}

// Contains reports whether the cell (x, y) lies on the track.
func (t Track) Contains(x, y int) bool {
	return t.Width > 0 && y == t.Y && x >= t.X && x < t.X+t.Width
}

// Fraction maps a pointer column to [0, 1]. Columns left of the track give
// 0, columns right of it give 1.
func (t Track) Fraction(x int) float64 {
	if t.Width <= 1 {
		return 0
	}
	col := min(max(x-t.X, 0), t.Width-1)
	return float64(col) / float64(t.Width-1)
}

// Seeker receives the seeks a gesture produces.
type Seeker interface {
	BeginScrub()
	ScrubTo(fraction float64)
	EndScrub()
}

// Model tracks one scrub gesture.
//
//	idle --press on track--> scrubbing --move on track--> scrubbing
//	scrubbing --release/leave/move off track--> idle
//
// A press followed by a release without motion is a tap: a single seek.
type Model struct {
	seeker    Seeker
	scrubbing bool
}

// New creates a scrub model driving s.
func New(s Seeker) *Model {
	return &Model{seeker: s}
}

// Scrubbing reports whether a gesture is in progress.
func (m *Model) Scrubbing() bool {
	return m.scrubbing
}

// Press starts a gesture if (x, y) is on the track and seeks there.
func (m *Model) Press(t Track, x, y int) bool {
	if !t.Contains(x, y) {
		return false
	}
	m.scrubbing = true
	m.seeker.BeginScrub()
	m.seeker.ScrubTo(t.Fraction(x))
	return true
}

// Move seeks to the pointer column while scrubbing. Moving off the track
// ends the gesture without seeking.
func (m *Model) Move(t Track, x, y int) bool {
	if !m.scrubbing {
		return false
	}
	if !t.Contains(x, y) {
		return m.Release()
	}
	m.seeker.ScrubTo(t.Fraction(x))
	return true
}

// Release ends the gesture.
func (m *Model) Release() bool {
	if !m.scrubbing {
		return false
	}
	m.scrubbing = false
	m.seeker.EndScrub()
	return true
}

// Leave ends the gesture when the pointer leaves the window.
func (m *Model) Leave() bool {
	return m.Release()
}

// Reset drops a gesture the seeker has already ended on its own, as when
// playback stops mid-drag.
func (m *Model) Reset() {
	m.scrubbing = false
}

// HandleMouse routes a mouse message with coordinates already relative to
// the transport panel. It returns true if the message was consumed.
func (m *Model) HandleMouse(msg tea.MouseMsg, t Track) bool {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		return m.Press(t, msg.X, msg.Y)
	case tea.MouseActionMotion:
		return m.Move(t, msg.X, msg.Y)
	case tea.MouseActionRelease:
		return m.Release()
	}
	return false
}

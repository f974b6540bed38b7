package transport

import (
	"fmt"
	"time"

	"github.com/llehouerou/soundearth/internal/playback"
)

// FormatTime renders d as m:ss, flooring to whole seconds. Negative
// durations render as 0:00.
func FormatTime(d time.Duration) string {
	secs := max(int(d/time.Second), 0)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// FillRatio is the filled share of the progress bar: position/duration in
// [0, 1], or 0 while the duration is unknown.
func FillRatio(position, duration time.Duration) float64 {
	return playback.State{Position: position, Duration: duration}.Progress()
}

// StatusText describes the playback state in one line.
func StatusText(s playback.State) string {
	if s.Status == playback.StatusError {
		return "Audio error"
	}
	switch s.Notice {
	case playback.NoticeActivationRequired:
		return "Press play to start"
	case playback.NoticePlayFailed:
		if s.Err != nil {
			return "Play failed: " + s.Err.Error()
		}
		return "Play failed"
	}

	switch s.Status {
	case playback.StatusLoading:
		return "Loading " + s.Location.Name + "..."
	case playback.StatusReady:
		return "Ready to play"
	case playback.StatusPlaying:
		return "Playing"
	case playback.StatusPaused:
		return "Paused"
	case playback.StatusEnded:
		return "Finished"
	default:
		return "Click a marker on the map to play"
	}
}

// internal/playback/state_test.go
package playback

import (
	"testing"
	"time"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "Idle"},
		{StatusLoading, "Loading"},
		{StatusReady, "Ready"},
		{StatusPlaying, "Playing"},
		{StatusPaused, "Paused"},
		{StatusEnded, "Ended"},
		{StatusError, "Error"},
		{Status(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestNotice_String(t *testing.T) {
	tests := []struct {
		notice Notice
		want   string
	}{
		{NoticeNone, "None"},
		{NoticeActivationRequired, "ActivationRequired"},
		{NoticePlayFailed, "PlayFailed"},
		{NoticeAudioError, "AudioError"},
		{Notice(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.notice.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.notice, got, tt.want)
		}
	}
}

func TestState_Progress(t *testing.T) {
	tests := []struct {
		name     string
		position time.Duration
		duration time.Duration
		want     float64
	}{
		{"unknown duration", 10 * time.Second, 0, 0},
		{"start", 0, time.Minute, 0},
		{"half", 30 * time.Second, time.Minute, 0.5},
		{"end", time.Minute, time.Minute, 1},
		{"past end clamps", 2 * time.Minute, time.Minute, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Position: tt.position, Duration: tt.duration}
			if got := s.Progress(); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInitialState(t *testing.T) {
	s := initialState()
	if s.HasSelection() {
		t.Error("initial state should have no selection")
	}
	if s.Playing || s.Scrubbing {
		t.Error("initial state should be stopped")
	}
	if s.View != ViewIdle {
		t.Errorf("View = %v, want ViewIdle", s.View)
	}
	if s.DurationKnown() {
		t.Error("initial duration should be unknown")
	}
}

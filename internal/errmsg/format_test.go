//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpAudioLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "audio load",
			op:       OpAudioLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load audio: file not found",
		},
		{
			name:     "map init",
			op:       OpMapInit,
			err:      errors.New("map area too small"),
			expected: "Failed to load the map: map area too small",
		},
		{
			name:     "playback start",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
		{
			name:     "install",
			op:       OpInstall,
			err:      errors.New("permission denied"),
			expected: "Failed to install desktop entry: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpAudioLoad,
			context:  "tokyo-rain.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "with context",
			op:       OpAudioLoad,
			context:  "tokyo-rain.mp3",
			err:      errors.New("unsupported format"),
			expected: "Failed to load audio 'tokyo-rain.mp3': unsupported format",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpPlaybackSeek,
			context:  "",
			err:      errors.New("no clip"),
			expected: "Failed to seek: no clip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.context, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}

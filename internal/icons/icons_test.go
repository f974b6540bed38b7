//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to unicode", "", StyleUnicode},
		{"unknown style defaults to unicode", "invalid", StyleUnicode},
		{"case sensitive - NERD defaults to unicode", "NERD", StyleUnicode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Error("expected nerd icons to be active")
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Error("expected unicode icons to be active")
				}
			case StyleNone:
				if current != noneIcons {
					t.Error("expected none icons to be active")
				}
			}
		})
	}

	Init("unicode")
}

func TestPlayPause(t *testing.T) {
	tests := []struct {
		style   string
		playing bool
		want    string
	}{
		{"unicode", false, "▶"},
		{"unicode", true, "⏸"},
		{"none", false, ">"},
		{"none", true, "||"},
		{"nerd", false, "\uf04b"},
		{"nerd", true, "\uf04c"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := PlayPause(tt.playing); got != tt.want {
				t.Errorf("PlayPause(%v) = %q, want %q", tt.playing, got, tt.want)
			}
		})
	}

	Init("unicode")
}

func TestTransportIconsNonEmpty(t *testing.T) {
	for _, style := range []string{"nerd", "unicode", "none"} {
		t.Run(style, func(t *testing.T) {
			Init(style)
			for name, fn := range map[string]func() string{
				"Play":     Play,
				"Pause":    Pause,
				"Stop":     Stop,
				"Previous": Previous,
				"Next":     Next,
				"Error":    Error,
				"Marker":   Marker,
				"Install":  Install,
			} {
				if fn() == "" {
					t.Errorf("%s() is empty", name)
				}
			}
		})
	}

	Init("unicode")
}

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		style string
		icon  string
		want  string
	}{
		{"unicode", "🐦", "🐦 Kyoto Birds"},
		{"nerd", "🐦", "🐦 Kyoto Birds"},
		{"none", "🐦", "Kyoto Birds"},
		{"unicode", "", "Kyoto Birds"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := FormatLocation(tt.icon, "Kyoto Birds"); got != tt.want {
				t.Errorf("FormatLocation() = %q, want %q", got, tt.want)
			}
		})
	}

	Init("unicode")
}

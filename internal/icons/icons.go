package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style.
type Icons struct {
	Play       string
	Pause      string
	Stop       string
	Previous   string
	Next       string
	Error      string
	Marker     string
	Volume     string
	VolumeMute string
	Install    string
}

var (
	nerdIcons = Icons{
		Play:       "\uf04b",     // nf-fa-play
		Pause:      "\uf04c",     // nf-fa-pause
		Stop:       "\uf04d",     // nf-fa-stop
		Previous:   "\uf048",     // nf-fa-step_backward
		Next:       "\uf051",     // nf-fa-step_forward
		Error:      "\uf071",     // nf-fa-warning
		Marker:     "\uf041",     // nf-fa-map_marker
		Volume:     "\U000f057e", // nf-md-volume_high
		VolumeMute: "\U000f0581", // nf-md-volume_off
		Install:    "\uf019",     // nf-fa-download
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Stop:       "⏹",
		Previous:   "⏮",
		Next:       "⏭",
		Error:      "⚠",
		Marker:     "●",
		Volume:     "🔊",
		VolumeMute: "🔇",
		Install:    "⤓",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Stop:       "[]",
		Previous:   "|<",
		Next:       ">|",
		Error:      "!",
		Marker:     "o",
		Volume:     "vol",
		VolumeMute: "mute",
		Install:    "+",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Play returns the play glyph.
func Play() string { return current.Play }

// Pause returns the pause glyph.
func Pause() string { return current.Pause }

// PlayPause returns the glyph for the play/pause button: pause while
// playing, play otherwise.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

func Stop() string       { return current.Stop }
func Previous() string   { return current.Previous }
func Next() string       { return current.Next }
func Error() string      { return current.Error }
func Volume() string     { return current.Volume }
func VolumeMute() string { return current.VolumeMute }
func Install() string    { return current.Install }

// Marker returns the map marker glyph used when the location icon
// cannot be drawn.
func Marker() string { return current.Marker }

// FormatLocation prefixes a location name with its icon, unless icons are
// disabled.
func FormatLocation(icon, name string) string {
	if current == noneIcons || icon == "" {
		return name
	}
	return icon + " " + name
}

package transport

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/soundearth/internal/icons"
)

// Button identifies a transport button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrevious
	ButtonPlayPause
	ButtonStop
	ButtonNext
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonPrevious:
		return "Previous"
	case ButtonPlayPause:
		return "PlayPause"
	case ButtonStop:
		return "Stop"
	case ButtonNext:
		return "Next"
	default:
		return "None"
	}
}

// span is the horizontal extent of one rendered button.
type span struct {
	button Button
	label  string
	x      int
	width  int
}

const buttonGap = 1

// buttonSpans lays the buttons out from column x. The play/pause label
// follows the playing flag, so its width may change between renders.
func buttonSpans(x int, playing bool) []span {
	order := []struct {
		b     Button
		glyph string
	}{
		{ButtonPrevious, icons.Previous()},
		{ButtonPlayPause, icons.PlayPause(playing)},
		{ButtonStop, icons.Stop()},
		{ButtonNext, icons.Next()},
	}
	spans := make([]span, 0, len(order))
	for _, o := range order {
		label := " " + o.glyph + " "
		w := lipgloss.Width(label)
		spans = append(spans, span{button: o.b, label: label, x: x, width: w})
		x += w + buttonGap
	}
	return spans
}

func hitButton(spans []span, x int) Button {
	for _, s := range spans {
		if x >= s.x && x < s.x+s.width {
			return s.button
		}
	}
	return ButtonNone
}

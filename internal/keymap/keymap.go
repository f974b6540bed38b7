package keymap

// Binding maps keys to an action and documents it.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "locations"
}

// All contains all key bindings, in help order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionInstall, []string{"i"}, "Install desktop entry", "global"},
	{ActionReloadMap, []string{"r"}, "Reload map", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNext, []string{"n", "right"}, "Next location", "playback"},
	{ActionPrevious, []string{"p", "left"}, "Previous location", "playback"},
	{ActionSeekForward, []string{"shift+right"}, "Seek +5s", "playback"},
	{ActionSeekBack, []string{"shift+left"}, "Seek -5s", "playback"},
	{ActionSeekStart, []string{"home"}, "Back to start", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionMute, []string{"m"}, "Mute", "playback"},

	// Locations
	{ActionSelect1, []string{"1"}, "Play location 1", "locations"},
	{ActionSelect2, []string{"2"}, "Play location 2", "locations"},
	{ActionSelect3, []string{"3"}, "Play location 3", "locations"},
	{ActionSelect4, []string{"4"}, "Play location 4", "locations"},
	{ActionSelect5, []string{"5"}, "Play location 5", "locations"},
	{ActionSelect6, []string{"6"}, "Play location 6", "locations"},
	{ActionSelect7, []string{"7"}, "Play location 7", "locations"},
	{ActionSelect8, []string{"8"}, "Play location 8", "locations"},
	{ActionSelect9, []string{"9"}, "Play location 9", "locations"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

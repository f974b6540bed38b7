// Package keymap defines the key bindings and resolves key presses to
// commands.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionHelp      Action = "help"
	ActionInstall   Action = "install"
	ActionReloadMap Action = "reload_map"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionStop        Action = "stop"
	ActionNext        Action = "next"
	ActionPrevious    Action = "previous"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionSeekStart   Action = "seek_start"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"
	ActionMute        Action = "mute"

	// Direct location selection (digit keys)
	ActionSelect1 Action = "select_1"
	ActionSelect2 Action = "select_2"
	ActionSelect3 Action = "select_3"
	ActionSelect4 Action = "select_4"
	ActionSelect5 Action = "select_5"
	ActionSelect6 Action = "select_6"
	ActionSelect7 Action = "select_7"
	ActionSelect8 Action = "select_8"
	ActionSelect9 Action = "select_9"
)

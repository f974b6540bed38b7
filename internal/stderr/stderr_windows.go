//go:build windows

// Package stderr is a no-op on Windows, where the audio backend does not
// write to the console.
package stderr

import "log/slog"

// Messages never receives on Windows.
var Messages = make(chan string)

// Start is a no-op on Windows.
func Start(_ *slog.Logger) error {
	return nil
}

// Stop is a no-op on Windows.
func Stop() {}

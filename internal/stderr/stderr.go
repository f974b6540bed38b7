//go:build !windows

// Package stderr captures output written straight to file descriptor 2 by
// the audio backend (ALSA through oto), which would otherwise corrupt the
// TUI layout. Captured lines are logged and handed to the UI.
package stderr

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
	"syscall"
)

const bufferSize = 100

// Messages receives captured stderr lines.
var Messages = make(chan string, bufferSize)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Start begins capturing stderr output. Call it before the audio device is
// opened. On error the program keeps writing to the original stderr.
// Every captured line is also logged to log at warn level when log is set.
func Start(log *slog.Logger) error {
	if started {
		return nil
	}

	// Create a pipe
	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	// Save original stderr file descriptor
	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	// Redirect stderr (fd 2) to the pipe's write end
	err = syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd()))
	if err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go forward(pipeRead, log)

	return nil
}

func forward(r *os.File, log *slog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if log != nil {
			log.Warn("captured stderr", "line", line)
		}
		select {
		case Messages <- line:
		default:
			// Full; drop rather than block the writer.
		}
	}
}

// Stop restores the original stderr. Should be called on program exit.
func Stop() {
	if !started {
		return
	}

	// Restore original stderr
	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	// Close pipe
	pipeWrite.Close()
	pipeRead.Close()

	close(Messages)
	started = false
}

// Package install offers to register SoundEarth with the desktop by
// writing an XDG desktop entry.
package install

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// AppID names the desktop entry; notifications refer to it too.
const AppID = "soundearth"

// DesktopFile is the entry's file name under $XDG_DATA_HOME/applications.
const DesktopFile = AppID + ".desktop"

// Prompt tracks whether the install button should be shown.
type Prompt struct {
	path      string
	exe       string
	installed bool
	dismissed bool
}

// NewPrompt creates a prompt for an entry under dataHome that launches exe.
func NewPrompt(dataHome, exe string) *Prompt {
	p := &Prompt{
		path: filepath.Join(dataHome, "applications", DesktopFile),
		exe:  exe,
	}
	if _, err := os.Stat(p.path); err == nil {
		p.installed = true
	}
	return p
}

// DefaultPrompt creates a prompt for the running executable under the
// user's XDG data directory.
func DefaultPrompt() (*Prompt, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	return NewPrompt(xdg.DataHome, exe), nil
}

// Available reports whether the install button should be shown.
func (p *Prompt) Available() bool {
	return !p.installed && !p.dismissed
}

// Path returns where the desktop entry is written.
func (p *Prompt) Path() string {
	return p.path
}

// Accept writes the desktop entry and hides the prompt. It does nothing if
// the entry is already installed.
func (p *Prompt) Accept() error {
	if p.installed {
		p.dismissed = true
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create applications dir: %w", err)
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(Entry(p.exe)), 0o644); err != nil { //nolint:gosec // desktop entries are world-readable
		return fmt.Errorf("write desktop entry: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write desktop entry: %w", err)
	}

	p.installed = true
	p.dismissed = true
	return nil
}

// Decline hides the prompt for the rest of the session.
func (p *Prompt) Decline() {
	p.dismissed = true
}

// Entry returns the desktop entry launching exe in a terminal.
func Entry(exe string) string {
	lines := []string{
		"[Desktop Entry]",
		"Type=Application",
		"Name=SoundEarth",
		"GenericName=Ambient Sound Player",
		"Comment=Listen to ambient sounds from places around the world",
		"Exec=" + quoteExec(exe),
		"Terminal=true",
		"Icon=audio-x-generic",
		"Categories=AudioVideo;Audio;Player;",
		"Keywords=ambient;map;nature;soundscape;",
	}
	return strings.Join(lines, "\n") + "\n"
}

// quoteExec quotes an Exec path containing reserved characters, as the
// desktop entry spec requires.
func quoteExec(path string) string {
	if !strings.ContainsAny(path, " \t\"'\\><~|&;$*?#()`") {
		return path
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + r.Replace(path) + `"`
}

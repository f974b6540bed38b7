// Package transport renders the playback panel: the current location,
// status line, transport buttons and progress track.
package transport

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/soundearth/internal/icons"
	"github.com/llehouerou/soundearth/internal/playback"
	"github.com/llehouerou/soundearth/internal/player"
	"github.com/llehouerou/soundearth/internal/ui/render"
	"github.com/llehouerou/soundearth/internal/ui/scrub"
	"github.com/llehouerou/soundearth/internal/ui/styles"
)

// Panel geometry. Content starts after the left border and padding.
const (
	contentX    = 2
	contentRows = 3
	rowButtons  = 1
	rowProgress = 2
	timeWidth   = 5 // "99:59"
	minBarWidth = 3
)

// Height is the rendered panel height including borders.
const Height = contentRows + 2

// Model is the transport panel. It never mutates playback state itself;
// the app maps clicks to controller calls.
type Model struct {
	spinner spinner.Model
	width   int
	state   playback.State
	clip    *player.ClipInfo
	volume  float64
	muted   bool
}

// New creates an empty transport panel.
func New() Model {
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = lipgloss.NewStyle().Foreground(styles.T().Secondary)
	return Model{spinner: sp, state: playback.State{Selected: playback.NoSelection}, volume: 1}
}

// Init returns no command; the spinner starts with the first load.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update advances the loading spinner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return m, nil
	}
	if m.state.Status != playback.StatusLoading {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// SetState replaces the displayed state. It returns the spinner tick when a
// load starts.
func (m *Model) SetState(s playback.State) tea.Cmd {
	starting := s.Status == playback.StatusLoading && m.state.Status != playback.StatusLoading
	if s.Selected != m.state.Selected {
		m.clip = nil
	}
	m.state = s
	if starting {
		return m.spinner.Tick
	}
	return nil
}

// State returns the displayed state.
func (m Model) State() playback.State {
	return m.state
}

// SetClipInfo sets the file details shown in the idle view. Info for a
// clip other than the selected one is ignored by the caller.
func (m *Model) SetClipInfo(info *player.ClipInfo) {
	m.clip = info
}

// SetVolume sets the level shown next to the buttons.
func (m *Model) SetVolume(level float64, muted bool) {
	m.volume = level
	m.muted = muted
}

// SetWidth sets the total panel width including borders.
func (m *Model) SetWidth(w int) {
	m.width = w
}

func (m Model) innerWidth() int {
	return max(m.width-2*contentX, 0)
}

func (m Model) barWidth() int {
	return m.innerWidth() - 2*timeWidth - 2
}

// Track returns the progress bar geometry relative to the panel, or a
// zero-width track when seeking is not possible.
func (m Model) Track() scrub.Track {
	w := m.barWidth()
	if m.state.View != playback.ViewPlayer || !m.state.DurationKnown() || w < minBarWidth {
		return scrub.Track{}
	}
	return scrub.Track{
		X:     contentX + timeWidth + 1,
		Y:     1 + rowProgress,
		Width: w,
	}
}

// ButtonAt returns the button under panel cell (x, y).
func (m Model) ButtonAt(x, y int) Button {
	if m.state.View != playback.ViewPlayer || y != 1+rowButtons {
		return ButtonNone
	}
	return hitButton(buttonSpans(contentX, m.state.Playing), x)
}

// View renders the panel.
func (m Model) View() string {
	if m.width < 2*contentX+1 {
		return ""
	}
	var rows []string
	if m.state.View == playback.ViewPlayer {
		rows = m.playerRows()
	} else {
		rows = m.idleRows()
	}

	active := m.state.View == playback.ViewPlayer
	return styles.PanelStyle(active).
		Padding(0, 1).
		Width(m.width - 2).
		Render(strings.Join(rows, "\n"))
}

func (m Model) playerRows() []string {
	w := m.innerWidth()
	loc := m.state.Location
	title := titleStyle().Render(render.Truncate(icons.FormatLocation(loc.Icon, loc.Name), w/2))
	header := render.Row(title, m.statusView(), w)

	var buttons strings.Builder
	for i, s := range buttonSpans(0, m.state.Playing) {
		if i > 0 {
			buttons.WriteString(strings.Repeat(" ", buttonGap))
		}
		buttons.WriteString(buttonStyle(s.button == ButtonPlayPause && m.state.Playing).Render(s.label))
	}

	return []string{header, render.Row(buttons.String(), m.volumeView(), w), m.progressView()}
}

func (m Model) idleRows() []string {
	w := m.innerWidth()
	title := styles.Title("SoundEarth")

	if !m.state.HasSelection() {
		return []string{
			render.Row(title, "", w),
			mutedStyle().Render(render.Truncate(StatusText(m.state), w)),
			mutedStyle().Render(render.Truncate("space play · n/p next/prev · ? help", w)),
		}
	}

	loc := m.state.Location
	where := fmt.Sprintf("%s  %s", icons.FormatLocation(loc.Icon, loc.Name), formatCoords(loc.Latitude, loc.Longitude))
	return []string{
		render.Row(title, m.statusView(), w),
		titleStyle().Render(render.Truncate(where, w)),
		mutedStyle().Render(render.Truncate(m.clipLine(), w)),
	}
}

func (m Model) statusView() string {
	text := StatusText(m.state)
	switch {
	case m.state.Status == playback.StatusLoading:
		text = m.spinner.View() + " " + text
	case m.state.Status == playback.StatusError, m.state.Notice == playback.NoticePlayFailed:
		text = icons.Error() + " " + text
	case m.state.Playing:
		text = icons.Play() + " " + text
	case m.state.Status == playback.StatusPaused:
		text = icons.Pause() + " " + text
	}
	w := m.innerWidth()
	return statusStyle(m.state).Render(render.Truncate(text, w-w/2-1))
}

func (m Model) volumeView() string {
	if m.muted {
		return mutedStyle().Render(icons.VolumeMute())
	}
	return mutedStyle().Render(fmt.Sprintf("%s %d%%", icons.Volume(), int(math.Round(m.volume*100))))
}

func (m Model) progressView() string {
	pos := fmt.Sprintf("%*s", timeWidth, FormatTime(m.state.Position))
	dur := fmt.Sprintf("%-*s", timeWidth, FormatTime(m.state.Duration))
	barWidth := m.barWidth()
	if barWidth < minBarWidth {
		return mutedStyle().Render(strings.TrimSpace(pos) + " / " + strings.TrimSpace(dur))
	}

	ratio := FillRatio(m.state.Position, m.state.Duration)
	filled := min(int(float64(barWidth)*ratio), barWidth)
	bar := barFilledStyle().Render(strings.Repeat("━", filled)) +
		barEmptyStyle().Render(strings.Repeat("─", barWidth-filled))
	return mutedStyle().Render(pos) + " " + bar + " " + mutedStyle().Render(dur)
}

func (m Model) clipLine() string {
	if m.clip == nil {
		return m.state.Location.AudioFile
	}
	parts := []string{m.clip.Format, humanize.Bytes(uint64(max(m.clip.Size, 0)))}
	if m.clip.Artist != "" {
		parts = append(parts, m.clip.Artist)
	}
	if m.state.DurationKnown() {
		parts = append(parts, FormatTime(m.state.Duration))
	}
	return strings.Join(parts, " · ")
}

func formatCoords(lat, lng float64) string {
	ns, ew := "N", "E"
	if lat < 0 {
		ns, lat = "S", -lat
	}
	if lng < 0 {
		ew, lng = "W", -lng
	}
	return fmt.Sprintf("%.2f°%s %.2f°%s", lat, ns, lng, ew)
}

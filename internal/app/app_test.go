package app

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/soundearth/internal/install"
	"github.com/llehouerou/soundearth/internal/location"
	"github.com/llehouerou/soundearth/internal/playback"
	"github.com/llehouerou/soundearth/internal/player"
	"github.com/llehouerou/soundearth/internal/ui/testutil"
	"github.com/llehouerou/soundearth/internal/ui/transport"
	"github.com/llehouerou/soundearth/internal/ui/worldmap"
)

const (
	testWidth  = 100
	testHeight = 30
)

func newTestModel(t *testing.T, opts Options) (Model, *playback.Controller, *player.Mock) {
	t.Helper()
	mock := player.NewMock()
	ctrl := playback.New(location.Default(), mock, playback.Options{AudioDir: "audio"})
	t.Cleanup(func() { _ = ctrl.Close() })

	opts.Controller = ctrl
	opts.Output = mock
	m := New(opts)
	m = update(m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return m, ctrl, mock
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

// pump relays every pending controller event into the model.
func pump(m Model) Model {
	for {
		select {
		case e := <-m.sub.StateChanged:
			m = update(m, StateChangedMsg(e))
		case e := <-m.sub.LocationChanged:
			m = update(m, LocationChangedMsg(e))
		case e := <-m.sub.Error:
			m = update(m, ControllerErrorMsg(e))
		default:
			return m
		}
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// playing selects location i and delivers its metadata.
func playing(t *testing.T, m Model, ctrl *playback.Controller, mock *player.Mock, i int) Model {
	t.Helper()
	require.NoError(t, ctrl.SelectLocation(i))
	ctrl.HandleEvent(player.MetadataReady(mock.LastLoad(), time.Minute))
	m = pump(m)
	require.True(t, ctrl.State().Playing)
	return m
}

func TestNew_PlacesMarkers(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	assert.Equal(t, 5, m.Map.MarkerCount())
	assert.Equal(t, -1, m.Map.Active())
	assert.False(t, m.MapFailed())
}

func TestView_Layout(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	out := testutil.StripANSI(m.View())
	lines := testutil.SplitLines(out)

	assert.Len(t, lines, testHeight)
	assert.Contains(t, lines[0], "SoundEarth")
	assert.True(t, testutil.ContainsLine(out, "Click a marker on the map to play"))
}

func TestWindowSize_TooSmallReplacesMap(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	m = update(m, tea.WindowSizeMsg{Width: testWidth, Height: 10})
	require.True(t, m.MapFailed())
	assert.Contains(t, testutil.StripANSI(m.View()), MapFailureText)

	m = update(m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	assert.False(t, m.MapFailed())
}

func TestNew_BasemapError(t *testing.T) {
	m, _, _ := newTestModel(t, Options{BasemapErr: worldmap.ErrTiles})

	require.True(t, m.MapFailed())
	assert.Contains(t, m.ErrorMsg, "Failed to load the map")

	// A resize does not clear a tile error.
	m = update(m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	assert.True(t, m.MapFailed())
}

func TestMapReload(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	m = update(m, MapReloadedMsg{Err: worldmap.ErrTiles})
	require.True(t, m.MapFailed())
	assert.Contains(t, m.ErrorMsg, "Failed to reload the map")

	m = update(m, MapReloadedMsg{Basemap: worldmap.DefaultBasemap()})
	assert.False(t, m.MapFailed())
	assert.Empty(t, m.ErrorMsg)
}

func TestReloadKey_ReturnsCommand(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	_, cmd := m.Update(key("r"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(MapReloadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.NotNil(t, msg.Basemap)
}

func TestKey_NumberSelectsLocation(t *testing.T) {
	m, ctrl, mock := newTestModel(t, Options{})

	m = update(m, key("3"))

	assert.Equal(t, 2, ctrl.State().Selected)
	assert.Equal(t, []string{filepath.Join("audio", "sahara-wind.mp3")}, mock.Loads())
	assert.True(t, mock.Activated())

	// Beyond the registry: ignored.
	update(m, key("9"))
	assert.Equal(t, 2, ctrl.State().Selected)
}

func TestKey_SpaceWithoutSelectionStartsFirst(t *testing.T) {
	m, ctrl, _ := newTestModel(t, Options{})

	update(m, key(" "))

	assert.Equal(t, 0, ctrl.State().Selected)
}

func TestKey_TransportCommands(t *testing.T) {
	m, ctrl, mock := newTestModel(t, Options{})
	m = playing(t, m, ctrl, mock, 1)

	m = update(m, key(" "))
	assert.Equal(t, playback.StatusPaused, ctrl.State().Status)

	m = update(m, key(" "))
	assert.True(t, ctrl.State().Playing)

	m = update(m, key("n"))
	assert.Equal(t, 2, ctrl.State().Selected)

	m = update(m, key("p"))
	m = update(m, key("p"))
	assert.Equal(t, 0, ctrl.State().Selected)

	update(m, key("s"))
	assert.Equal(t, playback.StatusIdle, ctrl.State().Status)
}

func TestKey_Seek(t *testing.T) {
	m, ctrl, mock := newTestModel(t, Options{})
	m = playing(t, m, ctrl, mock, 0)

	m = update(m, tea.KeyMsg{Type: tea.KeyShiftRight})
	assert.InDelta(t, float64(5*time.Second), float64(ctrl.State().Position), float64(time.Millisecond))

	update(m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, time.Duration(0), ctrl.State().Position)
}

func TestKey_Volume(t *testing.T) {
	m, _, mock := newTestModel(t, Options{})

	m = update(m, key("-"))
	m = update(m, key("-"))
	assert.InDelta(t, 0.8, mock.Volume(), 1e-9)

	m = update(m, key("m"))
	assert.True(t, mock.Muted())

	update(m, key("+"))
	assert.False(t, mock.Muted(), "changing the level unmutes")
	assert.InDelta(t, 0.9, mock.Volume(), 1e-9)
}

func TestKey_Quit(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	_, cmd := m.Update(key("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelp_ToggleAndClose(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	m = update(m, key("?"))
	require.True(t, m.ShowHelp)
	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "Playback")
	assert.Contains(t, out, "Tokyo Rain")
	assert.Contains(t, out, "space")

	m = update(m, key("esc"))
	assert.False(t, m.ShowHelp)

	m = update(m, key("?"))
	m = update(m, key("?"))
	assert.False(t, m.ShowHelp)
}

func TestStateChange_UpdatesTransportAndMarker(t *testing.T) {
	m, ctrl, mock := newTestModel(t, Options{})

	m = playing(t, m, ctrl, mock, 4)

	assert.True(t, m.Transport.State().Playing)
	assert.Equal(t, 4, m.Map.Active())
	assert.Contains(t, testutil.StripANSI(m.View()), "NYC Subway")

	ctrl.Stop()
	m = pump(m)
	assert.Equal(t, -1, m.Map.Active())
}

func TestMouse_MarkerClickSelects(t *testing.T) {
	m, ctrl, mock := newTestModel(t, Options{})

	loc, _ := ctrl.Registry().At(4)
	x, y, ok := m.Map.Project(loc.Latitude, loc.Longitude)
	require.True(t, ok)

	m = update(m, click(x, y+mapTop))

	assert.Equal(t, 4, ctrl.State().Selected)
	assert.True(t, mock.Activated())
	assert.Equal(t, -1, m.Map.Hovered())
}

func TestMouse_HoverShowsPopup(t *testing.T) {
	m, ctrl, _ := newTestModel(t, Options{})

	loc, _ := ctrl.Registry().At(1)
	x, y, ok := m.Map.Project(loc.Latitude, loc.Longitude)
	require.True(t, ok)

	m = update(m, tea.MouseMsg{X: x, Y: y + mapTop, Action: tea.MouseActionMotion})
	assert.Equal(t, 1, m.Map.Hovered())
	assert.Contains(t, testutil.StripANSI(m.View()), worldmap.PopupHint)

	// Moving onto the transport panel closes it.
	m = update(m, tea.MouseMsg{X: 0, Y: m.transportTop() + 1, Action: tea.MouseActionMotion})
	assert.Equal(t, -1, m.Map.Hovered())
}

func TestMouse_Scrub(t *testing.T) {
	m, ctrl, mock := newTestModel(t, Options{})
	m = playing(t, m, ctrl, mock, 0)

	track := m.Transport.Track()
	require.Positive(t, track.Width)
	top := m.transportTop()

	m = update(m, click(track.X+track.Width-1, top+track.Y))
	assert.True(t, m.Scrub.Scrubbing())
	assert.True(t, ctrl.State().Scrubbing)
	assert.Equal(t, time.Minute, ctrl.State().Position)

	m = update(m, tea.MouseMsg{X: track.X, Y: top + track.Y, Action: tea.MouseActionMotion})
	assert.Equal(t, time.Duration(0), ctrl.State().Position)

	m = update(m, tea.MouseMsg{X: track.X, Y: top + track.Y, Action: tea.MouseActionRelease})
	assert.False(t, m.Scrub.Scrubbing())
	assert.False(t, ctrl.State().Scrubbing)
}

func TestMouse_DragOffTrackEndsScrub(t *testing.T) {
	m, ctrl, mock := newTestModel(t, Options{})
	m = playing(t, m, ctrl, mock, 0)

	track := m.Transport.Track()
	top := m.transportTop()
	m = update(m, click(track.X+track.Width/2, top+track.Y))
	require.True(t, m.Scrub.Scrubbing())
	pos := ctrl.State().Position

	// Dragging up over the map ends the gesture where it was.
	m = update(m, tea.MouseMsg{X: track.X, Y: mapTop + 2, Action: tea.MouseActionMotion})
	assert.False(t, m.Scrub.Scrubbing())
	assert.False(t, ctrl.State().Scrubbing)
	assert.Equal(t, pos, ctrl.State().Position)
	assert.Equal(t, []time.Duration{pos}, mock.SeekCalls())

	// Further motion is ordinary hovering again.
	update(m, tea.MouseMsg{X: track.X + track.Width - 1, Y: top + track.Y, Action: tea.MouseActionMotion})
	assert.Equal(t, pos, ctrl.State().Position)
}

func TestStop_MidDragResetsScrub(t *testing.T) {
	m, ctrl, mock := newTestModel(t, Options{})
	m = playing(t, m, ctrl, mock, 0)

	track := m.Transport.Track()
	top := m.transportTop()
	m = update(m, click(track.X, top+track.Y))
	require.True(t, m.Scrub.Scrubbing())

	ctrl.Stop()
	m = pump(m)
	assert.False(t, m.Scrub.Scrubbing())

	seeks := len(mock.SeekCalls())
	update(m, tea.MouseMsg{X: track.X + 3, Y: top + track.Y, Action: tea.MouseActionMotion})
	assert.Len(t, mock.SeekCalls(), seeks, "motion after stop must not seek")
}

func TestBlur_EndsScrub(t *testing.T) {
	m, ctrl, mock := newTestModel(t, Options{})
	m = playing(t, m, ctrl, mock, 0)

	track := m.Transport.Track()
	m = update(m, click(track.X, m.transportTop()+track.Y))
	require.True(t, m.Scrub.Scrubbing())

	m = update(m, tea.BlurMsg{})
	assert.False(t, m.Scrub.Scrubbing())
	assert.False(t, ctrl.State().Scrubbing)
}

func TestMouse_TransportButtons(t *testing.T) {
	m, ctrl, mock := newTestModel(t, Options{})
	m = playing(t, m, ctrl, mock, 0)

	top := m.transportTop()
	find := func(b transport.Button) (int, int) {
		for y := range transport.Height {
			for x := range testWidth {
				if m.Transport.ButtonAt(x, y) == b {
					return x, y
				}
			}
		}
		t.Fatalf("button %s not found", b)
		return 0, 0
	}

	x, y := find(transport.ButtonNext)
	m = update(m, click(x, top+y))
	assert.Equal(t, 1, ctrl.State().Selected)

	x, y = find(transport.ButtonStop)
	update(m, click(x, top+y))
	assert.Equal(t, playback.StatusIdle, ctrl.State().Status)
}

func TestControllerError_ShowsMessage(t *testing.T) {
	m, ctrl, mock := newTestModel(t, Options{})

	require.NoError(t, ctrl.SelectLocation(2))
	m = pump(m)
	ctrl.HandleEvent(player.Failed(mock.LastLoad(), os.ErrNotExist))
	m = pump(m)

	assert.Equal(t, "Failed to load audio 'sahara-wind.mp3': file does not exist", m.ErrorMsg)
	assert.Contains(t, testutil.StripANSI(m.View()), "Failed to load audio")

	// A new selection clears it.
	require.NoError(t, ctrl.SelectLocation(3))
	m = pump(m)
	assert.Empty(t, m.ErrorMsg)
}

func TestClipInfo_IgnoredForOtherLocation(t *testing.T) {
	m, ctrl, _ := newTestModel(t, Options{})
	require.NoError(t, ctrl.SelectLocation(0))
	m = pump(m)

	m = update(m, ClipInfoMsg{Index: 3, Info: &player.ClipInfo{Title: "Birds"}})
	assert.NotContains(t, testutil.StripANSI(m.View()), "Birds")
}

func TestStderr_ShownInFooter(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	m = update(m, StderrMsg{Line: "ALSA lib pcm.c: underrun"})

	assert.Equal(t, "Audio: ALSA lib pcm.c: underrun", m.ErrorMsg)
}

func TestInstall_HeaderButtons(t *testing.T) {
	dir := t.TempDir()
	prompt := install.NewPrompt(dir, "/usr/bin/soundearth")
	m, _, _ := newTestModel(t, Options{Install: prompt})

	require.True(t, m.installShown())
	assert.Contains(t, testutil.StripANSI(m.View()), "Install SoundEarth")

	span, _ := m.installSpans()
	m = update(m, click(span[0], 0))

	assert.FileExists(t, prompt.Path())
	assert.False(t, m.installShown())
	assert.NotContains(t, testutil.StripANSI(m.View()), "Install SoundEarth")
}

func TestInstall_Dismiss(t *testing.T) {
	dir := t.TempDir()
	prompt := install.NewPrompt(dir, "/usr/bin/soundearth")
	m, _, _ := newTestModel(t, Options{Install: prompt})

	_, dismiss := m.installSpans()
	m = update(m, click(dismiss[0], 0))

	assert.False(t, m.installShown())
	assert.NoFileExists(t, prompt.Path())

	// The key does nothing once dismissed.
	update(m, key("i"))
	assert.NoFileExists(t, prompt.Path())
}

type fakeAnnouncer struct {
	mu        sync.Mutex
	got       []location.Location
	dismissed int
	err       error
}

func (f *fakeAnnouncer) Announce(loc location.Location) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, loc)
	return f.err
}

func (f *fakeAnnouncer) Dismiss() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dismissed++
	return f.err
}

func (f *fakeAnnouncer) dismissCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dismissed
}

// runAll starts every command a batch holds. Commands that block, such as
// the subscription watch, are left running.
func runAll(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				runAll(c)
			}
		}
	}()
}

func TestAnnounceCmd(t *testing.T) {
	assert.Nil(t, announceCmd(nil, location.Location{}))

	f := &fakeAnnouncer{err: errors.New("no bus")}
	cmd := announceCmd(f, location.Location{Name: "Kyoto Birds"})
	require.NotNil(t, cmd)

	msg := cmd().(NotifyDoneMsg)
	require.Len(t, f.got, 1)
	assert.Equal(t, "Kyoto Birds", f.got[0].Name)
	assert.ErrorIs(t, msg.Err, f.err)
}

func TestStop_DismissesNotification(t *testing.T) {
	f := &fakeAnnouncer{}
	m, ctrl, mock := newTestModel(t, Options{Announcer: f})
	m = playing(t, m, ctrl, mock, 0)

	ctrl.Stop()
	e := <-m.sub.StateChanged
	_, cmd := m.Update(StateChangedMsg(e))
	runAll(cmd)

	assert.Eventually(t, func() bool { return f.dismissCount() == 1 }, time.Second, 5*time.Millisecond)
}

func TestStopped(t *testing.T) {
	active := playback.State{View: playback.ViewPlayer, Status: playback.StatusPlaying}
	idle := playback.State{View: playback.ViewIdle, Status: playback.StatusIdle}
	failed := playback.State{View: playback.ViewPlayer, Status: playback.StatusError}

	assert.True(t, stopped(active, idle))
	assert.False(t, stopped(idle, idle))
	assert.False(t, stopped(active, failed))
}

func TestPulseTick(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	_, cmd := m.Update(PulseTickMsg{})

	assert.NotNil(t, cmd)
}

func TestPulseTick_RefreshesVolume(t *testing.T) {
	m, ctrl, mock := newTestModel(t, Options{})
	m = playing(t, m, ctrl, mock, 0)

	mock.SetVolume(0.3)
	m = update(m, PulseTickMsg{})
	assert.Contains(t, testutil.StripANSI(m.View()), "30%")

	mock.SetMuted(true)
	m = update(m, PulseTickMsg{})
	assert.NotContains(t, testutil.StripANSI(m.View()), "30%")
}

func TestCheckClips_OneMissing(t *testing.T) {
	dir := t.TempDir()
	mock := player.NewMock()
	ctrl := playback.New(location.Default(), mock, playback.Options{AudioDir: dir})
	t.Cleanup(func() { _ = ctrl.Close() })

	const absent = 1
	for i, loc := range ctrl.Registry().All() {
		if i == absent {
			continue
		}
		require.NoError(t, os.WriteFile(ctrl.ClipPath(loc), []byte("ID3"), 0o644))
	}

	m := New(Options{Controller: ctrl, Output: mock})
	m = update(m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})

	msg := checkClipsCmd(ctrl.Registry(), ctrl.ClipPath)()
	checked, ok := msg.(ClipsCheckedMsg)
	require.True(t, ok, "got %T", msg)
	require.Len(t, checked.Missing, 1)
	assert.Equal(t, absent, checked.Missing[0].Index)
	assert.ErrorIs(t, checked.Missing[0].Err, os.ErrNotExist)

	m = update(m, checked)
	assert.True(t, m.Map.Missing(absent))
	assert.False(t, m.Map.Missing(0))
	assert.Contains(t, testutil.StripANSI(m.View()), "1 clip not found")
}

func TestCheckClips_MissingSurvivesMapReload(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	m = update(m, ClipsCheckedMsg{Missing: []MissingClip{{Index: 2, Path: "audio/x.mp3"}}})

	m = update(m, MapReloadedMsg{Basemap: worldmap.DefaultBasemap()})

	assert.True(t, m.Map.Missing(2))
}

func TestCheckClips_NoneMissing(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	m = update(m, ClipsCheckedMsg{})

	assert.Contains(t, testutil.StripANSI(m.View()), footerHint)
}

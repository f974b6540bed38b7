// internal/app/app.go
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundearth/internal/errmsg"
	"github.com/llehouerou/soundearth/internal/install"
	"github.com/llehouerou/soundearth/internal/keymap"
	"github.com/llehouerou/soundearth/internal/playback"
	"github.com/llehouerou/soundearth/internal/ui/scrub"
	"github.com/llehouerou/soundearth/internal/ui/transport"
	"github.com/llehouerou/soundearth/internal/ui/worldmap"
)

// Options wires the model's collaborators.
type Options struct {
	Controller Controller
	Output     Output // nil disables activation and volume keys

	// Basemap is the map's land mask; nil means the built-in one. BasemapErr
	// is the error from loading a configured file, shown as a map failure.
	Basemap    *worldmap.Basemap
	BasemapErr error
	TilesPath  string
	Padding    float64

	Install   *install.Prompt // nil hides the install button
	Announcer Announcer       // nil disables notifications
	Logger    *slog.Logger
}

// Model is the root application model.
type Model struct {
	ctrl      Controller
	output    Output
	announcer Announcer
	sub       *playback.Subscription
	log       *slog.Logger

	Map       *worldmap.Map
	Transport transport.Model
	Scrub     *scrub.Model
	Install   *install.Prompt
	Keys      *keymap.Resolver

	tilesPath string
	mapErr    error
	missing   []MissingClip

	ShowHelp bool
	ErrorMsg string
	Width    int
	Height   int
}

// New creates the application model and places one marker per location.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	base := opts.Basemap
	if base == nil {
		base = worldmap.DefaultBasemap()
	}

	m := Model{
		ctrl:      opts.Controller,
		output:    opts.Output,
		announcer: opts.Announcer,
		sub:       opts.Controller.Subscribe(),
		log:       logger.With("component", "app"),
		Map:       worldmap.New(base, opts.Padding),
		Transport: transport.New(),
		Scrub:     scrub.New(opts.Controller),
		Install:   opts.Install,
		Keys:      keymap.NewResolver(keymap.All),
		tilesPath: opts.TilesPath,
		mapErr:    opts.BasemapErr,
	}
	if m.mapErr != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpMapInit, m.mapErr)
	}
	m.placeMarkers()
	m.Transport.SetState(m.ctrl.State())
	m.syncVolume()
	return m
}

// placeMarkers adds one marker per location and fits the view to them.
// Selection failures come back through the subscription's error channel.
func (m *Model) placeMarkers() {
	ctrl := m.ctrl
	reg := ctrl.Registry()
	m.Map.ClearMarkers()
	points := make([]worldmap.LatLng, 0, reg.Len())
	for i, loc := range reg.All() {
		style := worldmap.MarkerStyle{Title: loc.Name, Icon: loc.Icon, Color: loc.Color}
		m.Map.AddMarker(loc.Latitude, loc.Longitude, style, func() {
			_ = ctrl.SelectLocation(i)
		})
		points = append(points, worldmap.LatLng{Lat: loc.Latitude, Lng: loc.Longitude})
	}

	m.Map.FitToBounds(points)
	m.Map.SetActive(ctrl.State().Selected)
	m.log.Debug("markers placed", "count", len(points))
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.WatchControllerEvents(),
		WatchStderr(),
		PulseTickCmd(),
		checkClipsCmd(m.ctrl.Registry(), m.ctrl.ClipPath),
	)
}

// MapFailed reports whether the map panel is replaced by the failure notice.
func (m Model) MapFailed() bool {
	return m.mapErr != nil
}

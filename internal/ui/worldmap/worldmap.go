// Package worldmap draws an interactive equirectangular world map with
// clickable location markers.
package worldmap

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Minimum usable map size in cells.
const (
	MinWidth  = 20
	MinHeight = 6
)

// DefaultPadding is the share of the bounds added on every side by
// FitToBounds.
const DefaultPadding = 0.1

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// minSpan keeps a single-point fit from zooming in to nothing.
const minSpan = 10.0

// ErrContainer is returned when the map area is too small to draw into.
var ErrContainer = errors.New("worldmap: map area too small")

// LatLng is a geographic point in degrees.
type LatLng struct {
	Lat, Lng float64
}

// Bounds is the visible latitude/longitude box.
type Bounds struct {
	South, West, North, East float64
}

// World covers the whole globe.
var World = Bounds{South: -90, West: -180, North: 90, East: 180}

// MarkerStyle controls how a marker and its popup look.
type MarkerStyle struct {
	Title string
	Icon  string
	Color colorful.Color
}

type marker struct {
	pos     LatLng
	style   MarkerStyle
	onClick func()
	missing bool
}

// Map is the map view. It is not safe for concurrent use; the UI owns it.
type Map struct {
	base    *Basemap
	padding float64

	width, height int
	view          Bounds
	fit           []LatLng // points of the last FitToBounds, refit on resize

	markers []marker
	hovered int
	active  int
	phase   float64
}

// New creates a map over base showing the whole world.
func New(base *Basemap, padding float64) *Map {
	if padding < 0 {
		padding = DefaultPadding
	}
	return &Map{
		base:    base,
		padding: padding,
		view:    World,
		hovered: -1,
		active:  -1,
	}
}

// SetSize sets the drawing area in cells and refits the last bounds.
func (m *Map) SetSize(width, height int) error {
	if width < MinWidth || height < MinHeight {
		m.width, m.height = 0, 0
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrContainer, width, height, MinWidth, MinHeight)
	}
	m.width, m.height = width, height
	if m.fit != nil {
		m.FitToBounds(m.fit)
	}
	return nil
}

// Size returns the drawing area in cells.
func (m *Map) Size() (width, height int) {
	return m.width, m.height
}

// Ready reports whether the map has a usable size.
func (m *Map) Ready() bool {
	return m.width > 0 && m.height > 0
}

// Bounds returns the visible area.
func (m *Map) Bounds() Bounds {
	return m.view
}

// FitToBounds zooms so that every point is visible, padded on each side
// and widened to keep the map undistorted.
func (m *Map) FitToBounds(points []LatLng) {
	m.fit = append(m.fit[:0:0], points...)
	if len(points) == 0 {
		m.view = World
		return
	}

	b := Bounds{South: 90, West: 180, North: -90, East: -180}
	for _, p := range points {
		b.South = min(b.South, p.Lat)
		b.North = max(b.North, p.Lat)
		b.West = min(b.West, p.Lng)
		b.East = max(b.East, p.Lng)
	}

	latSpan := max(b.North-b.South, minSpan)
	lngSpan := max(b.East-b.West, minSpan)
	latSpan *= 1 + 2*m.padding
	lngSpan *= 1 + 2*m.padding

	if m.Ready() {
		// One cell is cellAspect times taller than wide; keep degrees square.
		w, h := float64(m.width), float64(m.height)
		if latSpan/h < cellAspect*lngSpan/w {
			latSpan = cellAspect * lngSpan * h / w
		} else {
			lngSpan = latSpan * w / (cellAspect * h)
		}
	}

	latSpan = min(latSpan, 180)
	lngSpan = min(lngSpan, 360)
	midLat := (b.North + b.South) / 2
	midLng := (b.East + b.West) / 2

	south := clampStart(midLat-latSpan/2, latSpan, -90, 90)
	west := clampStart(midLng-lngSpan/2, lngSpan, -180, 180)
	m.view = Bounds{South: south, West: west, North: south + latSpan, East: west + lngSpan}
}

// clampStart shifts a window of size span starting at start into [lo, hi].
func clampStart(start, span, lo, hi float64) float64 {
	return min(max(start, lo), hi-span)
}

// Project returns the cell showing the point, and false when the point is
// outside the visible area.
func (m *Map) Project(lat, lng float64) (x, y int, ok bool) {
	if !m.Ready() {
		return 0, 0, false
	}
	fx := (lng - m.view.West) / (m.view.East - m.view.West) * float64(m.width)
	fy := (m.view.North - lat) / (m.view.North - m.view.South) * float64(m.height)
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return x, y, false
	}
	return x, y, true
}

// Unproject returns the point at the center of cell (x, y).
func (m *Map) Unproject(x, y int) LatLng {
	dLng := (m.view.East - m.view.West) / float64(max(m.width, 1))
	dLat := (m.view.North - m.view.South) / float64(max(m.height, 1))
	return LatLng{
		Lat: m.view.North - (float64(y)+0.5)*dLat,
		Lng: m.view.West + (float64(x)+0.5)*dLng,
	}
}

// SetBasemap replaces the land mask, keeping markers and view.
func (m *Map) SetBasemap(b *Basemap) {
	m.base = b
}

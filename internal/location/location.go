// Package location holds the fixed set of places SoundEarth can play.
package location

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Location is one geographic point with an associated ambient clip.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
	AudioFile string
	Icon      string
	Color     colorful.Color
}

// Spec is the configuration form of a Location.
type Spec struct {
	Name      string  `koanf:"name"`
	Latitude  float64 `koanf:"lat"`
	Longitude float64 `koanf:"lng"`
	AudioFile string  `koanf:"file"`
	Icon      string  `koanf:"icon"`
	Color     string  `koanf:"color"` // "#rrggbb"
}

// Registry is an immutable ordered list of locations.
type Registry struct {
	locations []Location
}

var defaultSpecs = []Spec{
	{Name: "Tokyo Rain", Latitude: 35.6762, Longitude: 139.6503, AudioFile: "tokyo-rain.mp3", Icon: "🌧️", Color: "#ef4444"},
	{Name: "Iceland Waterfall", Latitude: 64.1466, Longitude: -21.9426, AudioFile: "iceland-waterfall.mp3", Icon: "💧", Color: "#3b82f6"},
	{Name: "Sahara Wind", Latitude: 23.4162, Longitude: 25.6628, AudioFile: "sahara-wind.mp3", Icon: "🌪️", Color: "#eab308"},
	{Name: "Kyoto Birds", Latitude: 35.0116, Longitude: 135.7681, AudioFile: "kyoto-birds.mp3", Icon: "🐦", Color: "#22c55e"},
	{Name: "NYC Subway", Latitude: 40.7128, Longitude: -74.0060, AudioFile: "nyc-subway.mp3", Icon: "🚇", Color: "#a855f7"},
}

// DefaultColor is used for locations configured without a color.
const DefaultColor = "#2dd4bf"

// ErrEmpty is returned when a registry would contain no locations.
var ErrEmpty = errors.New("location: no locations defined")

// Default returns the built-in registry.
func Default() *Registry {
	r, err := NewRegistry(defaultSpecs)
	if err != nil {
		panic(err) // built-in table is static
	}
	return r
}

// NewRegistry validates specs and builds a registry from them.
func NewRegistry(specs []Spec) (*Registry, error) {
	if len(specs) == 0 {
		return nil, ErrEmpty
	}
	locs := make([]Location, 0, len(specs))
	for i, s := range specs {
		loc, err := s.build()
		if err != nil {
			return nil, fmt.Errorf("location %d: %w", i, err)
		}
		locs = append(locs, loc)
	}
	return &Registry{locations: locs}, nil
}

func (s Spec) build() (Location, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return Location{}, errors.New("missing name")
	}
	if strings.TrimSpace(s.AudioFile) == "" {
		return Location{}, fmt.Errorf("%s: missing audio file", name)
	}
	if s.Latitude < -90 || s.Latitude > 90 {
		return Location{}, fmt.Errorf("%s: latitude %v out of range", name, s.Latitude)
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		return Location{}, fmt.Errorf("%s: longitude %v out of range", name, s.Longitude)
	}
	hex := s.Color
	if hex == "" {
		hex = DefaultColor
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return Location{}, fmt.Errorf("%s: color %q: %w", name, s.Color, err)
	}
	icon := s.Icon
	if icon == "" {
		icon = "🌍"
	}
	return Location{
		Name:      name,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		AudioFile: s.AudioFile,
		Icon:      icon,
		Color:     col,
	}, nil
}

// Len returns the number of locations.
func (r *Registry) Len() int {
	return len(r.locations)
}

// At returns the location at index i.
func (r *Registry) At(i int) (Location, bool) {
	if i < 0 || i >= len(r.locations) {
		return Location{}, false
	}
	return r.locations[i], true
}

// All returns a copy of every location in order.
func (r *Registry) All() []Location {
	out := make([]Location, len(r.locations))
	copy(out, r.locations)
	return out
}

// IndexOf returns the index of the location playing file, or -1.
func (r *Registry) IndexOf(file string) int {
	for i, l := range r.locations {
		if l.AudioFile == file {
			return i
		}
	}
	return -1
}

//go:build linux

package mpris

import (
	"errors"
	"fmt"
	"hash/fnv"
	"path"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/soundearth/internal/location"
	"github.com/llehouerou/soundearth/internal/playback"
	"github.com/llehouerou/soundearth/internal/player"
)

// ErrUnknownClip is returned by OpenUri for a clip no location plays.
var ErrUnknownClip = errors.New("mpris: no location plays this clip")

// BusName is the suffix of the org.mpris.MediaPlayer2 bus name.
const BusName = "soundearth"

// Service is the part of the playback controller exposed over MPRIS.
type Service interface {
	State() playback.State
	Registry() *location.Registry
	SelectLocation(i int) error
	Next() error
	Previous() error
	Play() error
	Pause()
	Toggle() error
	Stop()
	SeekTo(pos time.Duration)
}

// Adapter connects the playback controller to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. mixer may be nil, in which
// case the volume is reported as full and cannot be changed.
func New(service Service, mixer player.Mixer) (*Adapter, error) {
	pa := &playerAdapter{service: service, mixer: mixer}
	a := &Adapter{
		server: server.NewServer(BusName, &rootAdapter{}, pa),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "SoundEarth", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp3", "audio/flac", "audio/x-wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	service Service
	mixer   player.Mixer
}

func (p *playerAdapter) Next() error {
	return p.service.Next()
}

func (p *playerAdapter) Previous() error {
	return p.service.Previous()
}

func (p *playerAdapter) Pause() error {
	p.service.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	return p.service.Toggle()
}

func (p *playerAdapter) Stop() error {
	p.service.Stop()
	return nil
}

// Play resumes the current location, or starts the first one when nothing
// has been picked yet.
func (p *playerAdapter) Play() error {
	if !p.service.State().HasSelection() {
		return p.service.Next()
	}
	return p.service.Play()
}

// Seek moves by a relative offset.
func (p *playerAdapter) Seek(offset types.Microseconds) error {
	pos := p.service.State().Position
	p.service.SeekTo(pos + time.Duration(offset)*time.Microsecond)
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.service.SeekTo(time.Duration(position) * time.Microsecond)
	return nil
}

// OpenUri plays the location whose clip the URI names. Only the file name
// is compared, so file:// URIs and bare names both work.
//
//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(uri string) error {
	name := path.Base(strings.TrimPrefix(uri, "file://"))
	i := p.service.Registry().IndexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownClip, uri)
	}
	return p.service.SelectLocation(i)
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.service.State()), nil
}

func playbackStatus(s playback.State) types.PlaybackStatus {
	switch {
	case s.Playing:
		return types.PlaybackStatusPlaying
	case s.Status == playback.StatusPaused, s.Status == playback.StatusReady:
		return types.PlaybackStatusPaused
	default:
		return types.PlaybackStatusStopped
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return metadata(p.service.State()), nil
}

func metadata(s playback.State) types.Metadata {
	if !s.HasSelection() {
		return types.Metadata{}
	}
	loc := s.Location
	return types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(loc.AudioFile)),
		Length:  types.Microseconds(s.Duration.Microseconds()),
		Title:   loc.Name,
		Artist:  []string{"SoundEarth"},
		Album:   fmt.Sprintf("%.4f, %.4f", loc.Latitude, loc.Longitude),
	}
}

func (p *playerAdapter) Volume() (float64, error) {
	switch {
	case p.mixer == nil:
		return 1, nil
	case p.mixer.Muted():
		return 0, nil
	}
	return p.mixer.Volume(), nil
}

func (p *playerAdapter) SetVolume(level float64) error {
	if p.mixer == nil {
		return nil
	}
	p.mixer.SetMuted(false)
	p.mixer.SetVolume(level)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.service.State().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

// Locations wrap around, so there is always a next and a previous one.
func (p *playerAdapter) CanGoNext() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.service.State().Playing, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.service.State().DurationKnown(), nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(file string) string {
	h := fnv.New64a()
	h.Write([]byte(file))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

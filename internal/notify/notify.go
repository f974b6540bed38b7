// Package notify announces the location now playing with a desktop
// notification. Each announcement replaces the previous one, so at most
// one SoundEarth bubble is on screen.
package notify

import (
	"fmt"
	"time"

	"github.com/llehouerou/soundearth/internal/location"
)

// AppName is the application name sent with every notification.
const AppName = "SoundEarth"

// Urgency is the freedesktop notification urgency level.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const (
	nowPlayingIcon    = "audio-x-generic"
	nowPlayingTimeout = 4 * time.Second
)

// Notification is the payload of one "now playing" bubble.
type Notification struct {
	Summary string
	Body    string
	Icon    string // icon name or image path
	Timeout time.Duration
	Urgency Urgency
}

// NowPlaying builds the bubble for loc: glyph and name as the summary,
// coordinates as the body.
func NowPlaying(loc location.Location) Notification {
	summary := loc.Name
	if loc.Icon != "" {
		summary = loc.Icon + " " + loc.Name
	}
	return Notification{
		Summary: summary,
		Body:    fmt.Sprintf("%.4f, %.4f", loc.Latitude, loc.Longitude),
		Icon:    nowPlayingIcon,
		Timeout: nowPlayingTimeout,
		Urgency: UrgencyLow,
	}
}

// Notifier shows the location now playing.
type Notifier interface {
	// Announce shows loc, replacing the previous announcement.
	Announce(loc location.Location) error
	// Dismiss withdraws the current announcement, if any.
	Dismiss() error
}

// nopNotifier is used when no notification server is reachable.
type nopNotifier struct{}

func (nopNotifier) Announce(_ location.Location) error { return nil }
func (nopNotifier) Dismiss() error                     { return nil }

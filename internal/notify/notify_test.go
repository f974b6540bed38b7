package notify

import (
	"testing"
	"time"

	"github.com/llehouerou/soundearth/internal/location"
)

func TestNowPlaying(t *testing.T) {
	loc := location.Location{Name: "Kyoto Birds", Latitude: 35.0116, Longitude: 135.7681, Icon: "🐦"}

	n := NowPlaying(loc)

	if n.Summary != "🐦 Kyoto Birds" {
		t.Errorf("Summary = %q", n.Summary)
	}
	if n.Body != "35.0116, 135.7681" {
		t.Errorf("Body = %q", n.Body)
	}
	if n.Urgency != UrgencyLow {
		t.Errorf("Urgency = %d, want low", n.Urgency)
	}
	if n.Timeout != 4*time.Second {
		t.Errorf("Timeout = %v, want 4s", n.Timeout)
	}
}

func TestNowPlaying_NoIcon(t *testing.T) {
	n := NowPlaying(location.Location{Name: "Somewhere", Latitude: -33.8688, Longitude: 151.2093})
	if n.Summary != "Somewhere" {
		t.Errorf("Summary = %q", n.Summary)
	}
	if n.Body != "-33.8688, 151.2093" {
		t.Errorf("Body = %q", n.Body)
	}
}

func TestNopNotifier(t *testing.T) {
	var n Notifier = nopNotifier{}
	if err := n.Announce(location.Location{Name: "Tokyo Rain"}); err != nil {
		t.Errorf("Announce() error: %v", err)
	}
	if err := n.Dismiss(); err != nil {
		t.Errorf("Dismiss() error: %v", err)
	}
}

//go:build linux

package notify

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/llehouerou/soundearth/internal/install"
	"github.com/llehouerou/soundearth/internal/location"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// server is the part of org.freedesktop.Notifications SoundEarth calls.
type server interface {
	Notify(n Notification, replaces uint32) (uint32, error)
	CloseNotification(id uint32) error
}

// busNotifier announces locations and remembers the bubble on screen so
// the next announcement replaces it.
type busNotifier struct {
	mu      sync.Mutex
	srv     server
	current uint32
}

// New connects to the session bus. Without a session bus it returns a
// notifier that shows nothing.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nopNotifier{}, nil //nolint:nilerr // no session bus, nothing to show
	}
	return newBusNotifier(&sessionServer{obj: conn.Object(dbusNotifyDest, dbusNotifyPath)}), nil
}

func newBusNotifier(srv server) *busNotifier {
	return &busNotifier{srv: srv}
}

// Announce shows loc in place of the previous announcement.
func (b *busNotifier) Announce(loc location.Location) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	id, err := b.srv.Notify(NowPlaying(loc), b.current)
	if err != nil {
		return fmt.Errorf("announce %s: %w", loc.Name, err)
	}
	b.current = id
	return nil
}

// Dismiss closes the bubble on screen.
func (b *busNotifier) Dismiss() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == 0 {
		return nil
	}
	id := b.current
	b.current = 0
	if err := b.srv.CloseNotification(id); err != nil {
		return fmt.Errorf("dismiss notification %d: %w", id, err)
	}
	return nil
}

// sessionServer calls the notification daemon over D-Bus.
type sessionServer struct {
	obj dbus.BusObject
}

func (s *sessionServer) Notify(n Notification, replaces uint32) (uint32, error) {
	call := s.obj.Call(dbusNotifyInterface+".Notify", 0, notifyArgs(n, replaces)...)
	if call.Err != nil {
		return 0, call.Err
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *sessionServer) CloseNotification(id uint32) error {
	return s.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id).Err
}

// notifyArgs lays n out as the arguments of
// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout).
func notifyArgs(n Notification, replaces uint32) []any {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(install.AppID),
		"category":      dbus.MakeVariant("x-soundearth.now-playing"),
	}
	return []any{
		AppName,
		replaces,
		n.Icon,
		n.Summary,
		n.Body,
		[]string{},
		hints,
		int32(n.Timeout.Milliseconds()),
	}
}

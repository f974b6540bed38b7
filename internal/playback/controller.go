// internal/playback/controller.go
package playback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"sync"
	"time"

	"github.com/llehouerou/soundearth/internal/location"
	"github.com/llehouerou/soundearth/internal/player"
)

// DefaultAdvanceDelay is the pause between a clip ending and the next one loading.
const DefaultAdvanceDelay = 2 * time.Second

// A seek is confirmed by the first time update near its target. Updates
// outside the window are treated as already in flight and ignored, at most
// maxStaleUpdates times.
const (
	seekSlackBefore = 100 * time.Millisecond
	seekSlackAfter  = time.Second
	maxStaleUpdates = 3
)

// ErrInvalidLocation is returned by SelectLocation for an out-of-range index.
var ErrInvalidLocation = errors.New("playback: location index out of range")

// Options configures a Controller.
type Options struct {
	AudioDir     string        // folder holding the clips
	AdvanceDelay time.Duration // 0 means DefaultAdvanceDelay
	Logger       *slog.Logger
}

// Controller is the single authority over which location is current and
// whether its clip is playing. It is safe for concurrent use; output
// events arrive through HandleEvent (usually via Run).
type Controller struct {
	mu sync.Mutex

	registry     *location.Registry
	output       player.Output
	audioDir     string
	advanceDelay time.Duration
	log          *slog.Logger

	state    State
	load     player.LoadID // 0 until the first selection
	ready    bool          // metadata received for load
	autoplay bool          // play as soon as metadata arrives

	seekTarget time.Duration
	seekGrace  int // stale time updates still to ignore after a seek

	advance    *time.Timer
	advanceSeq uint64

	subs   []*Subscription
	subsMu sync.RWMutex
	closed bool
}

// New creates a controller with nothing selected.
func New(reg *location.Registry, out player.Output, opts Options) *Controller {
	delay := opts.AdvanceDelay
	if delay <= 0 {
		delay = DefaultAdvanceDelay
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		registry:     reg,
		output:       out,
		audioDir:     opts.AudioDir,
		advanceDelay: delay,
		log:          logger.With("component", "playback"),
		state:        initialState(),
	}
}

// Registry returns the location registry.
func (c *Controller) Registry() *location.Registry {
	return c.registry
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ClipPath returns the on-disk path of a location's clip.
func (c *Controller) ClipPath(loc location.Location) string {
	return filepath.Join(c.audioDir, loc.AudioFile)
}

// AdvancePending reports whether an auto-advance is scheduled.
func (c *Controller) AdvancePending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.advance != nil
}

// SelectLocation makes location i current and starts loading its clip.
// An invalid index is logged and leaves the state untouched.
func (c *Controller) SelectLocation(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectLocked(i)
}

func (c *Controller) selectLocked(i int) error {
	loc, ok := c.registry.At(i)
	if !ok {
		err := fmt.Errorf("%w: %d", ErrInvalidLocation, i)
		c.log.Warn("select location", "index", i, "err", err)
		c.publishError(ErrorEvent{Operation: "select", Err: err})
		return err
	}

	c.cancelAdvanceLocked()
	prev := c.state
	path := c.ClipPath(loc)

	c.state = State{
		Selected: i,
		Location: loc,
		Status:   StatusLoading,
		View:     ViewPlayer,
	}
	c.ready = false
	c.autoplay = true
	c.seekGrace = 0
	c.load = c.output.Load(path)

	c.log.Info("select location", "index", i, "name", loc.Name, "path", path, "load", c.load)
	c.publishLocation(LocationChange{
		PreviousIndex: prev.Selected,
		Index:         i,
		Location:      loc,
		Path:          path,
	})
	c.publishState(prev)
	return nil
}

// Next selects the following location, wrapping to the first.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stepLocked(1)
}

// Previous selects the preceding location, wrapping to the last.
func (c *Controller) Previous() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stepLocked(-1)
}

func (c *Controller) stepLocked(delta int) error {
	n := c.registry.Len()
	var i int
	switch {
	case c.state.Selected != NoSelection:
		i = ((c.state.Selected+delta)%n + n) % n
	case delta > 0:
		i = 0
	default:
		i = n - 1
	}
	return c.selectLocked(i)
}

// Play starts or resumes the current clip. It is a no-op until the clip's
// metadata has arrived. A rejection from the output leaves the clip loaded
// but not playing, with a notice describing why.
func (c *Controller) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelAdvanceLocked()
	if !c.ready && c.state.Status == StatusLoading {
		// Still loading: let the metadata handler start it.
		c.autoplay = true
		return nil
	}
	return c.playLocked()
}

func (c *Controller) playLocked() error {
	if !c.ready || c.state.Playing {
		return nil
	}
	prev := c.state
	c.autoplay = true

	if err := c.output.Play(); err != nil {
		c.state.Playing = false
		if prev.Status != StatusPaused {
			c.state.Status = StatusReady
		}
		if errors.Is(err, player.ErrNotAllowed) {
			c.state.Notice = NoticeActivationRequired
			c.log.Info("playback blocked until user activation", "name", c.state.Location.Name)
		} else {
			c.state.Notice = NoticePlayFailed
			c.state.Err = err
			c.log.Error("play", "name", c.state.Location.Name, "err", err)
			c.publishError(ErrorEvent{Operation: "play", Path: c.ClipPath(c.state.Location), Err: err})
		}
		c.publishState(prev)
		return err
	}

	c.state.Playing = true
	c.state.Status = StatusPlaying
	c.state.View = ViewPlayer
	c.state.Notice = NoticeNone
	c.state.Err = nil
	c.publishState(prev)
	return nil
}

// Pause pauses the current clip.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelAdvanceLocked()
	c.pauseLocked()
}

func (c *Controller) pauseLocked() {
	c.autoplay = false
	if !c.state.Playing {
		return
	}
	prev := c.state
	c.output.Pause()
	c.state.Playing = false
	c.state.Status = StatusPaused
	c.publishState(prev)
}

// Toggle switches between playing and paused.
func (c *Controller) Toggle() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelAdvanceLocked()
	if c.state.Playing {
		c.pauseLocked()
		return nil
	}
	return c.playLocked()
}

// Stop halts playback, rewinds to 0 and returns the UI to the idle view.
// The selection is kept so Next/Previous continue from it.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelAdvanceLocked()
	c.autoplay = false
	c.seekGrace = 0

	prev := c.state
	if c.ready {
		c.output.Pause()
		c.output.SetCurrentTime(0)
	}
	c.state.Playing = false
	c.state.Scrubbing = false
	c.state.Position = 0
	c.state.Status = StatusIdle
	c.state.View = ViewIdle
	c.state.Notice = NoticeNone
	c.state.Err = nil
	c.publishState(prev)
}

// Seek moves to fraction of the clip. fraction is clamped to [0, 1];
// nothing happens while the duration is unknown.
func (c *Controller) Seek(fraction float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelAdvanceLocked()
	c.seekLocked(fraction)
}

// SeekTo moves to an absolute position.
func (c *Controller) SeekTo(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelAdvanceLocked()
	if c.state.Duration <= 0 {
		return
	}
	c.seekLocked(float64(pos) / float64(c.state.Duration))
}

func (c *Controller) seekLocked(fraction float64) {
	if math.IsNaN(fraction) {
		fraction = 0
	}
	fraction = min(max(fraction, 0), 1)
	if !c.ready || c.state.Duration <= 0 {
		return
	}

	prev := c.state
	target := time.Duration(fraction * float64(c.state.Duration))
	c.output.SetCurrentTime(target)
	// Shown immediately, without waiting for the output's next time update.
	c.state.Position = target
	c.seekTarget = target
	c.seekGrace = maxStaleUpdates
	c.publishState(prev)
}

// BeginScrub suppresses time updates until EndScrub.
func (c *Controller) BeginScrub() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Scrubbing {
		return
	}
	prev := c.state
	c.state.Scrubbing = true
	c.publishState(prev)
}

// ScrubTo seeks while scrubbing.
func (c *Controller) ScrubTo(fraction float64) {
	c.Seek(fraction)
}

// EndScrub resumes normal time updates.
func (c *Controller) EndScrub() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.Scrubbing {
		return
	}
	prev := c.state
	c.state.Scrubbing = false
	c.publishState(prev)
}

// HandleEvent applies an output event. Events from a load other than the
// current one are ignored.
func (c *Controller) HandleEvent(e player.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.load == 0 || e.Load != c.load {
		c.log.Debug("stale event", "kind", e.Kind, "load", e.Load, "current", c.load)
		return
	}

	prev := c.state
	switch e.Kind {
	case player.EventMetadataReady:
		c.ready = true
		c.state.Duration = max(e.Duration, 0)
		c.state.Position = 0
		if c.state.Status == StatusLoading {
			c.state.Status = StatusReady
		}
		c.log.Debug("metadata ready", "name", c.state.Location.Name, "duration", e.Duration)
		c.publishState(prev)
		if c.autoplay {
			_ = c.playLocked()
		}

	case player.EventTimeUpdate:
		if c.state.Scrubbing {
			return
		}
		pos := max(e.Position, 0)
		if c.state.Duration > 0 {
			pos = min(pos, c.state.Duration)
		}
		if c.staleAfterSeekLocked(pos) {
			return
		}
		if pos == c.state.Position {
			return
		}
		c.state.Position = pos
		c.publishState(prev)

	case player.EventEnded:
		if !c.state.Playing {
			return
		}
		c.state.Playing = false
		c.state.Position = 0
		c.state.Status = StatusEnded
		c.log.Info("clip ended", "name", c.state.Location.Name)
		c.publishState(prev)
		c.scheduleAdvanceLocked()

	case player.EventError:
		c.cancelAdvanceLocked()
		c.ready = false
		c.state.Playing = false
		c.state.Position = 0
		c.state.Status = StatusError
		c.state.Notice = NoticeAudioError
		c.state.Err = e.Err
		path := c.ClipPath(c.state.Location)
		c.log.Error("audio error", "path", path, "err", e.Err)
		c.publishError(ErrorEvent{Operation: "load", Path: path, Err: e.Err})
		c.publishState(prev)
	}
}

// staleAfterSeekLocked reports whether pos predates the last seek.
func (c *Controller) staleAfterSeekLocked(pos time.Duration) bool {
	if c.seekGrace == 0 {
		return false
	}
	if pos >= c.seekTarget-seekSlackBefore && pos <= c.seekTarget+seekSlackAfter {
		c.seekGrace = 0
		return false
	}
	c.seekGrace--
	c.log.Debug("stale time update", "position", pos, "seek", c.seekTarget)
	return true
}

// Run feeds the output's events into the controller until ctx is done.
func (c *Controller) Run(ctx context.Context) {
	events := c.output.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-events:
			c.HandleEvent(e)
		}
	}
}

// scheduleAdvanceLocked arms the deferred Next. The timer is tied to
// advanceSeq, so any cancel or reschedule turns a late firing into a no-op.
func (c *Controller) scheduleAdvanceLocked() {
	c.cancelAdvanceLocked()
	seq := c.advanceSeq
	c.advance = time.AfterFunc(c.advanceDelay, func() {
		c.autoAdvance(seq)
	})
}

func (c *Controller) cancelAdvanceLocked() {
	if c.advance != nil {
		c.advance.Stop()
		c.advance = nil
	}
	c.advanceSeq++
}

func (c *Controller) autoAdvance(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.advance == nil || seq != c.advanceSeq {
		return
	}
	c.advance = nil
	c.log.Info("auto-advance", "from", c.state.Selected)
	_ = c.stepLocked(1)
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Close cancels any pending auto-advance and ends all subscriptions.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.cancelAdvanceLocked()
	c.mu.Unlock()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()
	return nil
}

func (c *Controller) publishState(prev State) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendState(StateChange{Previous: prev, Current: c.state})
	}
}

func (c *Controller) publishLocation(e LocationChange) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendLocation(e)
	}
}

func (c *Controller) publishError(e ErrorEvent) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendError(e)
	}
}

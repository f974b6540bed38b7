package player

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

const (
	defaultTickInterval = 250 * time.Millisecond
	eventBufferSize     = 32
)

// Options configures a Player.
type Options struct {
	// RequireActivation blocks Play until Activate has been called once.
	RequireActivation bool
	// Volume is the initial level in [0, 1].
	Volume float64
	// TickInterval is the time-update cadence while playing.
	TickInterval time.Duration
}

// Player is the beep-backed audio output. It drives a single clip at a time.
type Player struct {
	mu sync.Mutex

	state  State
	loadID LoadID
	src    *source

	requireActivation bool
	activated         bool

	volumeLevel float64
	muted       bool

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
	tick      time.Duration
}

// New creates a player and starts its time-update loop.
func New(opts Options) *Player {
	tick := opts.TickInterval
	if tick <= 0 {
		tick = defaultTickInterval
	}
	level := opts.Volume
	if level <= 0 || level > 1 {
		level = 1
	}
	p := &Player{
		state:             Stopped,
		requireActivation: opts.RequireActivation,
		volumeLevel:       level,
		events:            make(chan Event, eventBufferSize),
		done:              make(chan struct{}),
		tick:              tick,
	}
	go p.monitorLoop()
	return p
}

// Events returns the event stream.
func (p *Player) Events() <-chan Event {
	return p.events
}

// State returns the transport state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Activate records a user gesture.
func (p *Player) Activate() {
	p.mu.Lock()
	p.activated = true
	p.mu.Unlock()
}

// Close stops playback and releases the current clip.
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		p.mu.Lock()
		p.releaseLocked()
		p.mu.Unlock()
	})
	return nil
}

// releaseLocked drops the current clip. Caller holds p.mu.
func (p *Player) releaseLocked() {
	if p.src == nil {
		return
	}
	if speakerReady() {
		speaker.Clear()
	}
	p.src.close()
	p.src = nil
	p.state = Stopped
}

// monitorLoop emits time updates while a clip is playing.
func (p *Player) monitorLoop() {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.mu.Lock()
			if p.state != Playing || p.src == nil {
				p.mu.Unlock()
				continue
			}
			id := p.src.id
			pos := p.src.position()
			p.mu.Unlock()
			p.emitLossy(TimeUpdate(id, pos))
		case <-p.done:
			return
		}
	}
}

// emit delivers e unless the player is closed.
func (p *Player) emit(e Event) {
	select {
	case p.events <- e:
	case <-p.done:
	}
}

// emitLossy delivers e if there is room. Time updates are superseded by
// the next tick, so dropping one is harmless.
func (p *Player) emitLossy(e Event) {
	select {
	case p.events <- e:
	default:
	}
}

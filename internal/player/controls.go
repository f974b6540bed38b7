package player

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Play starts or resumes the loaded clip.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.src == nil {
		return ErrNoSource
	}
	if p.requireActivation && !p.activated {
		return ErrNotAllowed
	}
	if p.state == Playing {
		return nil
	}

	src := p.src
	if !src.started {
		src.started = true
		src.ctrl.Paused = false
		speaker.Play(beep.Seq(src.volume, beep.Callback(func() {
			// Runs on the speaker goroutine with the speaker lock held.
			go p.finished(src.id)
		})))
	} else {
		speaker.Lock()
		src.ctrl.Paused = false
		speaker.Unlock()
	}
	p.state = Playing
	return nil
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Playing || p.src == nil {
		return
	}
	speaker.Lock()
	p.src.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// SetCurrentTime moves the playback position to d, clamped to the clip.
func (p *Player) SetCurrentTime(d time.Duration) {
	p.mu.Lock()
	src := p.src
	if src == nil {
		p.mu.Unlock()
		return
	}

	n := src.format.SampleRate.N(d)
	n = min(max(n, 0), src.streamer.Len())

	speaker.Lock()
	_ = src.streamer.Seek(n)
	speaker.Unlock()

	id := src.id
	pos := src.format.SampleRate.D(n)
	p.mu.Unlock()

	p.emitLossy(TimeUpdate(id, pos))
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.src == nil {
		return 0
	}
	return p.src.position()
}

// Duration returns the loaded clip's length.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.src == nil {
		return 0
	}
	return p.src.duration()
}

// finished rewinds a clip that ran out and reports it.
func (p *Player) finished(id LoadID) {
	p.mu.Lock()
	if p.src == nil || p.src.id != id {
		p.mu.Unlock()
		return
	}
	src := p.src
	src.started = false
	speaker.Lock()
	src.ctrl.Paused = true
	_ = src.streamer.Seek(0)
	speaker.Unlock()
	p.state = Stopped
	p.mu.Unlock()

	p.emit(Ended(id))
}

// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// Mock is a test double for Output. Events are only produced by Emit.
type Mock struct {
	mu         sync.Mutex
	nextID     LoadID
	loads      []string
	playCalls  int
	pauseCalls int
	seekCalls  []time.Duration
	activated  bool
	playErr    error
	volume     float64
	muted      bool
	events     chan Event
}

// NewMock creates a new mock output for testing.
func NewMock() *Mock {
	return &Mock{volume: 1, events: make(chan Event, eventBufferSize)}
}

func (m *Mock) Load(path string) LoadID {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.loads = append(m.loads, path)
	return m.nextID
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	return m.playErr
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
}

func (m *Mock) SetCurrentTime(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, d)
}

func (m *Mock) Activate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activated = true
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = min(max(level, 0), 1)
}

func (m *Mock) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

func (m *Mock) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error { return nil }

// Test helpers

// Emit queues an event as if the audio backend had produced it.
func (m *Mock) Emit(e Event) { m.events <- e }

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) Loads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loads...)
}

// LastLoad returns the ID handed out by the most recent Load.
func (m *Mock) LastLoad() LoadID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nextID
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) Activated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activated
}

// Verify Mock implements Output and Mixer at compile time.
var (
	_ Output = (*Mock)(nil)
	_ Mixer  = (*Mock)(nil)
)

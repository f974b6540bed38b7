package playback

const eventBufferSize = 16

// Subscription delivers controller events to one consumer. Publishing
// never blocks the controller: a consumer that falls behind loses its
// oldest pending events, so the latest state always arrives.
type Subscription struct {
	StateChanged    <-chan StateChange
	LocationChanged <-chan LocationChange
	Error           <-chan ErrorEvent
	// Done is closed when the controller shuts down.
	Done <-chan struct{}

	state    chan StateChange
	location chan LocationChange
	errs     chan ErrorEvent
	done     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		state:    make(chan StateChange, eventBufferSize),
		location: make(chan LocationChange, eventBufferSize),
		errs:     make(chan ErrorEvent, eventBufferSize),
		done:     make(chan struct{}),
	}
	s.StateChanged, s.LocationChanged, s.Error, s.Done = s.state, s.location, s.errs, s.done
	return s
}

func (s *Subscription) close() {
	close(s.done)
}

func (s *Subscription) sendState(e StateChange)       { offer(s.state, e) }
func (s *Subscription) sendLocation(e LocationChange) { offer(s.location, e) }
func (s *Subscription) sendError(e ErrorEvent)        { offer(s.errs, e) }

// offer queues e, evicting the oldest queued event while ch is full.
func offer[E any](ch chan E, e E) {
	for {
		select {
		case ch <- e:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

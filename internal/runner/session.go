package runner

import "sync"

// Sink receives runner events. Implementations must not block in Send.
type Sink interface {
	Send(evt Event)
	Done() <-chan struct{}
}

// ChannelSession is a Sink backed by a buffered channel.
// Front ends read Events() from their own goroutine.
type ChannelSession struct {
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewChannelSession creates a channel sink. bufferSize controls how many
// events are held before the oldest are dropped.
func NewChannelSession(bufferSize int) *ChannelSession {
	if bufferSize < 1 {
		bufferSize = 64
	}
	return &ChannelSession{
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
	}
}

// Send queues an event. If the buffer is full the oldest event is dropped,
// so a slow reader only ever misses intermediate snapshots.
func (s *ChannelSession) Send(evt Event) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.events <- evt:
	default:
		select {
		case <-s.events:
		default:
		}
		select {
		case s.events <- evt:
		default:
		}
	}
}

// Events returns the channel to receive events from.
func (s *ChannelSession) Events() <-chan Event {
	return s.events
}

// Done returns a channel closed by Close.
func (s *ChannelSession) Done() <-chan struct{} {
	return s.done
}

// Close marks the session as done. Safe to call multiple times.
func (s *ChannelSession) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

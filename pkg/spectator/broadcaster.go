package spectator

import "sync"

// Broadcaster fans serialized snapshots out to websocket subscribers.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan []byte]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan []byte]struct{}),
	}
}

// Subscribe registers a new subscriber and returns its frame channel.
func (b *Broadcaster) Subscribe() chan []byte {
	ch := make(chan []byte, 10)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Broadcaster) Unsubscribe(ch chan []byte) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers a frame to all subscribers.
func (b *Broadcaster) Publish(frame []byte) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- frame:
		default:
			// Drop if the subscriber is lagging; the next frame will catch it up.
		}
	}
	b.mu.Unlock()
}

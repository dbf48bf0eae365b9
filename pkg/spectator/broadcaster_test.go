package spectator

import (
	"bytes"
	"testing"
)

func TestBroadcasterDeliversToAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	a := b.Subscribe()
	c := b.Subscribe()

	frame := []byte(`{"tick":1}`)
	b.Publish(frame)

	for _, ch := range []chan []byte{a, c} {
		select {
		case got := <-ch:
			if !bytes.Equal(got, frame) {
				t.Errorf("Expected frame %s, got %s", frame, got)
			}
		default:
			t.Error("Subscriber did not receive the published frame")
		}
	}
}

func TestBroadcasterUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	b.Unsubscribe(ch)
	if _, open := <-ch; open {
		t.Error("Unsubscribed channel should be closed")
	}

	b.Unsubscribe(ch) // second call is a no-op
	b.Publish([]byte("after")) // must not deliver to the removed subscriber
}

func TestBroadcasterDropsWhenSubscriberLags(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	// Overfill past the channel buffer; Publish must never block
	for i := 0; i < 50; i++ {
		b.Publish([]byte{byte(i)})
	}

	if got := len(ch); got != cap(ch) {
		t.Errorf("Expected a full buffer of %d frames, got %d", cap(ch), got)
	}
	if first := <-ch; first[0] != 0 {
		t.Errorf("Oldest buffered frame should survive, got %d", first[0])
	}
}

package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func recv(t *testing.T, sub *Subscription[string]) string {
	t.Helper()
	select {
	case v := <-sub.C():
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for stream value")
		return ""
	}
}

func TestSubscribeReplaysLatest(t *testing.T) {
	s := New("")
	s.Publish("BUYER")
	s.Publish("SELLER")

	sub := s.Subscribe()
	defer sub.Cancel()

	// The subscriber gets only the current value, never the history.
	assert.Equal(t, "SELLER", recv(t, sub))

	s.Publish("")
	assert.Equal(t, "", recv(t, sub))
}

func TestPublishOrderPerSubscriber(t *testing.T) {
	s := New(0)
	sub := s.Subscribe()
	defer sub.Cancel()

	for i := 1; i <= 50; i++ {
		s.Publish(i)
	}

	last := -1
	for i := 0; i <= 50; i++ {
		select {
		case v := <-sub.C():
			assert.Greater(t, v, last)
			last = v
		case <-time.After(2 * time.Second):
			t.Fatal("timed out")
		}
	}
	assert.Equal(t, 50, last)
}

func TestMultipleSubscribers(t *testing.T) {
	s := New("initial")
	a := s.Subscribe()
	b := s.Subscribe()
	defer a.Cancel()
	defer b.Cancel()

	assert.Equal(t, "initial", recv(t, a))
	assert.Equal(t, "initial", recv(t, b))

	s.Publish("next")
	assert.Equal(t, "next", recv(t, a))
	assert.Equal(t, "next", recv(t, b))
}

func TestCancelStopsDelivery(t *testing.T) {
	s := New(0)
	sub := s.Subscribe()
	sub.Cancel()

	// Publishing after cancel must not block; the channel closes once any
	// already-queued values are gone.
	s.Publish(1)

	for {
		select {
		case v, ok := <-sub.C():
			if !ok {
				return
			}
			assert.NotEqual(t, 1, v, "value published after cancel must not be delivered")
		case <-time.After(2 * time.Second):
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestCurrent(t *testing.T) {
	s := New("a")
	assert.Equal(t, "a", s.Current())
	s.Publish("b")
	assert.Equal(t, "b", s.Current())
}

// Package stream implements the replay-latest broadcast channel used for the
// session role and cart updates: a new subscriber immediately receives the
// most recently published value, then every later value in publish order.
package stream

import "sync"

// Stream is a broadcast channel with replay-latest semantics. It always
// holds a current value, so subscribers never wait for a first publish.
type Stream[T any] struct {
	mu      sync.Mutex
	current T
	subs    map[int]*Subscription[T]
	nextID  int
}

// New creates a Stream seeded with initial as its current value.
func New[T any](initial T) *Stream[T] {
	return &Stream[T]{
		current: initial,
		subs:    map[int]*Subscription[T]{},
	}
}

// Current returns the most recently published value.
func (s *Stream[T]) Current() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Publish delivers v to every subscriber, in publish order per subscriber,
// and makes it the current value. Publish never blocks on slow consumers.
func (s *Stream[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = v
	for _, sub := range s.subs {
		sub.push(v)
	}
}

// Subscribe registers a new subscriber. Its channel first yields the current
// value, then every subsequent publish. Call Cancel when done.
func (s *Stream[T]) Subscribe() *Subscription[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &Subscription[T]{
		stream: s,
		id:     s.nextID,
		out:    make(chan T),
		done:   make(chan struct{}),
	}
	sub.cond = sync.NewCond(&sub.mu)
	sub.queue = append(sub.queue, s.current)
	s.subs[sub.id] = sub
	s.nextID++

	go sub.drain()
	return sub
}

// Subscription is one subscriber's view of a Stream. Read values from C.
type Subscription[T any] struct {
	stream *Stream[T]
	id     int

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []T
	closed bool

	out  chan T
	done chan struct{}
}

// C returns the receive channel. It is closed after Cancel once the pending
// queue has drained.
func (sub *Subscription[T]) C() <-chan T {
	return sub.out
}

// Cancel detaches the subscription from the stream and releases its worker.
func (sub *Subscription[T]) Cancel() {
	sub.stream.mu.Lock()
	delete(sub.stream.subs, sub.id)
	sub.stream.mu.Unlock()

	sub.mu.Lock()
	if !sub.closed {
		sub.closed = true
		close(sub.done)
		sub.cond.Signal()
	}
	sub.mu.Unlock()
}

func (sub *Subscription[T]) push(v T) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return
	}
	sub.queue = append(sub.queue, v)
	sub.cond.Signal()
}

// drain moves queued values to the out channel, keeping publish order while
// never letting a slow consumer block the publisher.
func (sub *Subscription[T]) drain() {
	for {
		sub.mu.Lock()
		for len(sub.queue) == 0 && !sub.closed {
			sub.cond.Wait()
		}
		if len(sub.queue) == 0 && sub.closed {
			sub.mu.Unlock()
			close(sub.out)
			return
		}
		v := sub.queue[0]
		sub.queue = sub.queue[1:]
		sub.mu.Unlock()

		select {
		case sub.out <- v:
		case <-sub.done:
			close(sub.out)
			return
		}
	}
}

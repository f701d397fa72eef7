// Package pubsub provides the in-process fan-out used when no redis is
// configured.
package pubsub

import (
	"context"
	"sync"
	"time"
)

// Local delivers messages to subscribers in the same process. Messages
// published while nobody listens are dropped, as with redis Pub/Sub.
type Local struct {
	mu   sync.Mutex
	subs map[string]map[chan string]struct{}
}

// NewLocal creates an empty broker.
func NewLocal() *Local {
	return &Local{subs: make(map[string]map[chan string]struct{})}
}

// Publish hands message to every current subscriber of channel.
func (l *Local) Publish(_ context.Context, channel string, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ch := range l.subs[channel] {
		select {
		case ch <- message:
		default:
		}
	}
	return nil
}

// Subscribe waits for the next message on channel, giving up after timeout.
func (l *Local) Subscribe(ctx context.Context, channel string, timeout time.Duration) (string, error) {
	ch := make(chan string, 1)
	l.add(channel, ch)
	defer l.remove(channel, ch)

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case msg := <-ch:
		return msg, nil
	case <-timeoutCtx.Done():
		return "", timeoutCtx.Err()
	}
}

// Subscribers returns how many waiters channel has.
func (l *Local) Subscribers(channel string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs[channel])
}

func (l *Local) add(channel string, ch chan string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.subs[channel] == nil {
		l.subs[channel] = make(map[chan string]struct{})
	}
	l.subs[channel][ch] = struct{}{}
}

func (l *Local) remove(channel string, ch chan string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.subs[channel], ch)
	if len(l.subs[channel]) == 0 {
		delete(l.subs, channel)
	}
}

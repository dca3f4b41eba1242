// Package auth provides a session-state broadcast primitive. Consumers
// subscribe once and receive an event on every login/logout transition, so
// authorization decisions can be re-evaluated per notification instead of
// being cached indefinitely.
package auth

import "sync"

type Event struct {
	UserID   string
	LoggedIn bool
}

type Notifier struct {
	mu   sync.RWMutex
	subs []chan Event
}

func CreateNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a new observer. The returned channel is buffered;
// events are dropped for a subscriber that stops draining it, a slow
// observer must never block a login.
func (n *Notifier) Subscribe() <-chan Event {
	ch := make(chan Event, 16)

	n.mu.Lock()
	n.subs = append(n.subs, ch)
	n.mu.Unlock()

	return ch
}

func (n *Notifier) Notify(ev Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

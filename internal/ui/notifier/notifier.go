// Package notifier provides a topic-keyed ping mechanism for SSE updates.
package notifier

import "sync"

// Notifier delivers update pings to subscribed listeners.
// Listeners subscribe to one topic (a carousel instance ID) and receive an
// empty struct when that topic changes, or when Broadcast pings everyone.
// On a ping they should re-read the state they render.
type Notifier struct {
	mu        sync.RWMutex
	listeners map[chan struct{}]string
}

// New creates a new Notifier instance.
func New() *Notifier {
	return &Notifier{
		listeners: make(map[chan struct{}]string),
	}
}

// Subscribe returns a channel that receives pings for topic.
// The caller must call Unsubscribe when done to prevent goroutine leaks.
func (n *Notifier) Subscribe(topic string) chan struct{} {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	n.listeners[ch] = topic
	n.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener channel and closes it.
func (n *Notifier) Unsubscribe(ch chan struct{}) {
	n.mu.Lock()
	_, ok := n.listeners[ch]
	delete(n.listeners, ch)
	n.mu.Unlock()
	if ok {
		close(ch)
	}
}

// Publish pings the listeners of topic.
// Non-blocking: a listener that already has a pending ping is skipped.
func (n *Notifier) Publish(topic string) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for ch, t := range n.listeners {
		if t == topic {
			ping(ch)
		}
	}
}

// Broadcast pings every listener regardless of topic.
func (n *Notifier) Broadcast() {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for ch := range n.listeners {
		ping(ch)
	}
}

// Len returns the number of subscribed listeners.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}

func ping(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
		// Pending ping already queued; the listener re-reads everything anyway
	}
}

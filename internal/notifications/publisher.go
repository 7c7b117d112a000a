package notifications

import (
	"sync"

	"github.com/trendiesmaroc/admin-backend/internal/store"
)

// Publisher fans newly created notifications out to in-process
// subscribers. Delivery is synchronous and in subscription order; there is
// no buffering, so a publish with zero subscribers is dropped from the
// live channel (the record still exists in the store).
type Publisher struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(store.Notification)
}

// NewPublisher builds an empty publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Subscribe registers a callback and returns its unsubscribe function.
// Unsubscribing twice is a no-op.
func (p *Publisher) Subscribe(fn func(store.Notification)) func() {
	if fn == nil {
		return func() {}
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, subscription{id: id, fn: fn})
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i := range p.subs {
			if p.subs[i].id == id {
				p.subs = append(p.subs[:i], p.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish invokes every currently subscribed callback once, in
// subscription order. Callbacks run outside the lock so a subscriber may
// subscribe or unsubscribe from within its callback.
func (p *Publisher) Publish(notification store.Notification) {
	p.mu.Lock()
	current := make([]subscription, len(p.subs))
	copy(current, p.subs)
	p.mu.Unlock()

	for _, sub := range current {
		sub.fn(notification)
	}
}

// SubscriberCount reports the number of active subscriptions.
func (p *Publisher) SubscriberCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}

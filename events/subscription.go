package events

import (
	"context"
	"sync"
)

// subscriberBuffer is how many undelivered events a subscriber may hold before new ones are dropped
const subscriberBuffer = 16

// ISubscription defines the contract for subscription objects
type ISubscription interface {
	// Chan returns a read-only channel delivering the key of each event
	Chan() <-chan string
	// Cancel unsubscribes and closes the channel. Safe for repeated calls
	Cancel()
}

// ISubscriptionManager defines the contract for managing subscriptions
type ISubscriptionManager interface {
	// Subscribe creates a new subscription and returns it
	Subscribe() ISubscription
	// Emit sends key to all subscribers (non-blocking if their channel is full)
	Emit(ctx context.Context, key string)
}

type Subscription struct {
	ch   chan string
	mgr  *SubscriptionManager
	once sync.Once
}

// Chan returns a read-only channel delivering event keys.
func (s *Subscription) Chan() <-chan string { return s.ch }

// Cancel unsubscribes and closes the channel. Safe for repeated calls.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.mgr.unsubscribe(s.ch)
	})
}

type SubscriptionManager struct {
	mu          sync.RWMutex
	subscribers map[chan string]struct{}
}

func NewSubscriptionManager() *SubscriptionManager {
	return &SubscriptionManager{
		subscribers: make(map[chan string]struct{}),
	}
}

func (m *SubscriptionManager) Subscribe() ISubscription {
	ch := make(chan string, subscriberBuffer)

	m.mu.Lock()
	m.subscribers[ch] = struct{}{}
	m.mu.Unlock()

	return &Subscription{ch: ch, mgr: m}
}

func (m *SubscriptionManager) unsubscribe(ch chan string) {
	m.mu.Lock()
	if _, ok := m.subscribers[ch]; ok {
		delete(m.subscribers, ch)
		close(ch)
	}
	m.mu.Unlock()
}

// SubscriberCount returns the number of active subscriptions
func (m *SubscriptionManager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers)
}

// Emit sends key to all subscribers (non-blocking if their channel is full).
func (m *SubscriptionManager) Emit(ctx context.Context, key string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for sub := range m.subscribers {
		select {
		case <-ctx.Done():
			return
		case sub <- key:
		default:
			// Subscriber is not draining its channel, drop the event
		}
	}
}

package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"outreach-agent/pkg/log"
)

const defaultSubscriberBuffer = 64

// Broadcaster is an in-memory fan-out of events keyed by user id.
// Publishing never blocks: a subscriber whose buffer is full misses the event.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]map[string]chan Event // user -> sub id -> ch
	buffer      int
	l           log.Logger
}

// NewBroadcaster creates a Broadcaster with the given per-subscriber buffer.
func NewBroadcaster(l log.Logger, buffer int) *Broadcaster {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &Broadcaster{
		subscribers: make(map[string]map[string]chan Event),
		buffer:      buffer,
		l:           l,
	}
}

// Subscribe registers for events of userID (AllUsers for every user).
// The subscription is removed when ctx is cancelled.
func (b *Broadcaster) Subscribe(ctx context.Context, userID string) (<-chan Event, string) {
	if userID == "" {
		userID = AllUsers
	}
	subID := uuid.NewString()
	ch := make(chan Event, b.buffer)

	b.mu.Lock()
	if _, ok := b.subscribers[userID]; !ok {
		b.subscribers[userID] = make(map[string]chan Event)
	}
	b.subscribers[userID][subID] = ch
	b.mu.Unlock()

	b.l.Debug(ctx, "subscriber added", "user_id", userID, "sub_id", subID)

	go func() {
		<-ctx.Done()
		b.Unsubscribe(userID, subID)
	}()

	return ch, subID
}

// Emit implements Notifier. Sends happen under the read lock so Unsubscribe
// and Close cannot close a channel mid-send; they never block.
func (b *Broadcaster) Emit(ctx context.Context, userID, event string, payload any) {
	ev := Event{Name: event, UserID: userID, Payload: payload, At: time.Now().UTC()}

	dropped := 0
	b.mu.RLock()
	for _, key := range []string{userID, AllUsers} {
		for _, ch := range b.subscribers[key] {
			select {
			case ch <- ev:
			default:
				dropped++
			}
		}
		if userID == AllUsers {
			break
		}
	}
	b.mu.RUnlock()

	if dropped > 0 {
		b.l.Debug(ctx, "dropped event for slow subscribers", "user_id", userID, "event", event, "dropped", dropped)
	}
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broadcaster) Unsubscribe(userID, subID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.subscribers[userID]
	if !ok {
		return
	}
	ch, ok := subs[subID]
	if !ok {
		return
	}
	delete(subs, subID)
	close(ch)
	if len(subs) == 0 {
		delete(b.subscribers, userID)
	}
}

// Close drops every subscription.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for userID, subs := range b.subscribers {
		for subID, ch := range subs {
			close(ch)
			delete(subs, subID)
		}
		delete(b.subscribers, userID)
	}
}

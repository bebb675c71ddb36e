// Package ipc is the sync-engine side channel to the presentation layer.
// Notifications are queued without blocking the caller and fanned out to
// every connected WebSocket subscriber.
package ipc

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/alexjbarnes/drive-sync/internal/folders"
	"github.com/google/uuid"
)

// ErrQueueFull is returned when a notification cannot be queued without
// blocking. The notification is dropped.
var ErrQueueFull = errors.New("ipc queue full")

const (
	// subscriberBuffer is the per-subscriber send buffer. A subscriber
	// that falls this far behind starts missing messages.
	subscriberBuffer = 32

	MessageFolderRenamed = "folder.renamed"
)

// Message is the envelope written to subscribers as JSON.
type Message struct {
	ID      string                 `json:"id"`
	Type    string                 `json:"type"`
	SentAt  time.Time              `json:"sentAt"`
	Renamed *folders.FolderRenamed `json:"renamed,omitempty"`
}

// Broker queues notifications and fans them out to subscribers. It
// implements folders.Notifier.
type Broker struct {
	queue  chan Message
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[string]chan Message
}

// NewBroker creates a broker with a bounded queue of size entries.
func NewBroker(size int, logger *slog.Logger) *Broker {
	if size <= 0 {
		size = 1
	}

	return &Broker{
		queue:       make(chan Message, size),
		logger:      logger,
		subscribers: make(map[string]chan Message),
	}
}

// NotifyRenamed queues a rename notification. It never blocks; a full
// queue returns ErrQueueFull.
func (b *Broker) NotifyRenamed(_ context.Context, event folders.FolderRenamed) error {
	msg := Message{
		ID:      uuid.NewString(),
		Type:    MessageFolderRenamed,
		SentAt:  time.Now().UTC(),
		Renamed: &event,
	}

	select {
	case b.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run drains the queue into subscriber buffers until ctx is cancelled.
func (b *Broker) Run(ctx context.Context) error {
	b.logger.Info("ipc broker started")
	defer b.logger.Info("ipc broker stopped")

	for {
		select {
		case msg := <-b.queue:
			b.broadcast(msg)
		case <-ctx.Done():
			return nil
		}
	}
}

func (b *Broker) broadcast(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			b.logger.Warn("ipc subscriber buffer full",
				slog.String("subscriber", id),
				slog.String("message", msg.ID),
			)
		}
	}
}

// subscribe registers a new subscriber and returns its channel and an
// unsubscribe function.
func (b *Broker) subscribe() (string, <-chan Message, func()) {
	id := uuid.NewString()
	ch := make(chan Message, subscriberBuffer)

	b.mu.Lock()
	b.subscribers[id] = ch
	b.mu.Unlock()

	return id, ch, func() {
		b.mu.Lock()
		delete(b.subscribers, id)
		b.mu.Unlock()
	}
}

// Subscribers returns the number of connected subscribers.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subscribers)
}

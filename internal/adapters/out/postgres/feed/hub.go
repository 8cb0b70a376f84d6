// Package feed turns PostgreSQL inbox announcements into per-user subscriptions.
//
// A single pq.Listener LISTENs on the inbox channel for the whole process; the Hub fans
// each announcement out to the subscribers of the addressed user. Announcements carry only
// the sequence number, so a subscriber that misses one (slow consumer, reconnect) catches
// up by reading its inbox after the last sequence it has seen.
package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"time"

	"prepcenter/internal/adapters/out/postgres/notificationrepo"
	"prepcenter/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 2 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
	subscriberBuffer     = 16
)

// Announcement tells a subscriber that its inbox has grown up to Seq.
type Announcement struct {
	Seq int64
}

// ResyncSeq is announced to every subscriber after the listener reconnects. Anything may
// have been committed during the outage, so subscribers re-read their inbox.
const ResyncSeq int64 = math.MaxInt64

type Hub struct {
	mu          sync.Mutex
	subscribers map[kernel.UUID]map[chan Announcement]struct{}
	logger      *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[kernel.UUID]map[chan Announcement]struct{}),
		logger:      logger.With("component", "inbox-feed"),
	}
}

// Subscribe registers interest in userID's inbox. The returned cancel func must be called
// when the subscriber goes away; it closes the channel.
func (h *Hub) Subscribe(userID kernel.UUID) (<-chan Announcement, func()) {
	ch := make(chan Announcement, subscriberBuffer)

	h.mu.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan Announcement]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers[userID], ch)
			if len(h.subscribers[userID]) == 0 {
				delete(h.subscribers, userID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish delivers one raw NOTIFY payload. Malformed payloads are logged and dropped; a full
// subscriber buffer drops the announcement for that subscriber only.
func (h *Hub) Publish(payload string) {
	var msg notificationrepo.Announcement
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		h.logger.Warn("malformed inbox announcement", "payload", payload, "error", err)
		return
	}
	userID, err := kernel.UUIDFromString(msg.UserID)
	if err != nil {
		h.logger.Warn("inbox announcement without valid user", "payload", payload, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers[userID] {
		select {
		case ch <- Announcement{Seq: msg.Seq}:
		default:
			h.logger.Debug("subscriber lagging, announcement dropped", "user_id", msg.UserID, "seq", msg.Seq)
		}
	}
}

// Resync sends ResyncSeq to every subscriber of every user.
func (h *Hub) Resync() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, subscribers := range h.subscribers {
		for ch := range subscribers {
			select {
			case ch <- Announcement{Seq: ResyncSeq}:
			default:
				h.logger.Debug("subscriber lagging, resync dropped", "user_id", userID.String())
			}
		}
	}
}

// Subscribers reports how many live subscriptions userID has.
func (h *Hub) Subscribers(userID kernel.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[userID])
}

// Listen connects to dsn, LISTENs on the inbox channel and feeds the hub until ctx is done.
func (h *Hub) Listen(ctx context.Context, dsn string) error {
	listener := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			switch event {
			case pq.ListenerEventDisconnected:
				h.logger.Warn("inbox listener disconnected", "error", err)
			case pq.ListenerEventReconnected:
				h.logger.Info("inbox listener reconnected")
			case pq.ListenerEventConnectionAttemptFailed:
				h.logger.Warn("inbox listener connection attempt failed", "error", err)
			}
		})
	defer func() {
		_ = listener.Close()
	}()

	if err := listener.Listen(notificationrepo.Channel); err != nil {
		return err
	}
	h.logger.InfoContext(ctx, "listening for inbox announcements", "channel", notificationrepo.Channel)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-listener.Notify:
			// nil after a reconnect; announcements sent meanwhile are lost
			if n == nil {
				h.Resync()
				continue
			}
			h.Publish(n.Extra)
		case <-ticker.C:
			go func() {
				if err := listener.Ping(); err != nil {
					h.logger.Warn("inbox listener ping failed", "error", err)
				}
			}()
		}
	}
}

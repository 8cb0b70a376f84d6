package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"prepcenter/internal/adapters/out/postgres/feed"
	"prepcenter/internal/core/application/usecases/queries"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const heartbeatInterval = 25 * time.Second

// InboxFeed announces new inbox entries per user.
type InboxFeed interface {
	Subscribe(userID kernel.UUID) (<-chan feed.Announcement, func())
}

// StreamInbox handles GET /api/v1/inbox/stream as Server-Sent Events. The stream first
// replays everything after the resume point (the larger of ?after and Last-Event-ID), then
// re-reads the inbox whenever the feed announces a newer sequence. Each event id is the
// notification sequence, so a reconnecting browser resumes without gaps.
func (s *Server) StreamInbox(c echo.Context, params servers.StreamInboxParams) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	announcements, cancel := s.feed.Subscribe(actor.ID)
	defer cancel()

	ctx := c.Request().Context()
	last := max(deref(params.After), deref(params.LastEventID), 0)

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	if last, err = s.drainInbox(ctx, w, actor.ID, last); err != nil {
		return s.endStream(ctx, actor.ID, err)
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case a, ok := <-announcements:
			if !ok {
				return nil
			}
			if a.Seq <= last {
				continue
			}
			if last, err = s.drainInbox(ctx, w, actor.ID, last); err != nil {
				return s.endStream(ctx, actor.ID, err)
			}
		case <-heartbeat.C:
			if _, err = fmt.Fprint(w, ": ping\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

// drainInbox writes every notification after seq and returns the last sequence written.
func (s *Server) drainInbox(ctx context.Context, w *echo.Response, userID kernel.UUID, seq int64) (int64, error) {
	for {
		query, err := queries.NewListInboxQuery(userID, seq, queries.MaxPageSize)
		if err != nil {
			return seq, err
		}
		page, err := s.handlers.ListInbox.Handle(ctx, query)
		if err != nil {
			return seq, err
		}

		for _, n := range page {
			data, err := json.Marshal(notificationFromQuery(n))
			if err != nil {
				return seq, err
			}
			if _, err = fmt.Fprintf(w, "id: %d\nevent: notification\ndata: %s\n\n", n.Seq, data); err != nil {
				return seq, err
			}
			seq = n.Seq
		}
		w.Flush()

		if len(page) < queries.MaxPageSize {
			return seq, nil
		}
	}
}

func (s *Server) endStream(ctx context.Context, userID kernel.UUID, err error) error {
	if ctx.Err() != nil {
		return nil
	}
	s.logger.WarnContext(ctx, "inbox stream closed", "user_id", userID.String(), "error", err)
	return nil
}

package http

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prepcenter/internal/adapters/out/postgres/feed"
	"prepcenter/internal/core/application/usecases/commands"
	"prepcenter/internal/core/application/usecases/queries"
	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/generated/servers"
	"prepcenter/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f handlerFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

type closedFeed struct{}

func (closedFeed) Subscribe(kernel.UUID) (<-chan feed.Announcement, func()) {
	ch := make(chan feed.Announcement)
	close(ch)
	return ch, func() {}
}

// scriptedFeed hands out its announcements and then closes the subscription.
type scriptedFeed []feed.Announcement

func (f scriptedFeed) Subscribe(kernel.UUID) (<-chan feed.Announcement, func()) {
	ch := make(chan feed.Announcement, len(f))
	for _, a := range f {
		ch <- a
	}
	close(ch)
	return ch, func() {}
}

func newTestRouter(t *testing.T, handlers Handlers) *echo.Echo {
	return newFeedRouter(t, handlers, closedFeed{})
}

func newFeedRouter(t *testing.T, handlers Handlers, inbox InboxFeed) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(metrics.DefaultConfig())

	e, err := NewRouter(NewServer(handlers, inbox, m, logger), RouterConfig{
		JWTSecret: testSecret,
		Metrics:   m,
		Logger:    logger,
	})
	require.NoError(t, err)
	return e
}

func do(e *echo.Echo, method, path, auth, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	e := newTestRouter(t, Handlers{})

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/metrics", "", "").Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	e := newTestRouter(t, Handlers{})

	rec := do(e, http.MethodGet, "/api/v1/tasks", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusUnauthorized, body.Code)
}

func TestRouter_RoleIsEnforced(t *testing.T) {
	e := newTestRouter(t, Handlers{})
	client := signed(t, Actor{ID: kernel.NewUUID(), Role: RoleClient})

	rec := do(e, http.MethodPost, "/api/v1/tasks", client, `{"title":"count units"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestClaimTask_UsesCallerAsOperator(t *testing.T) {
	operator := Actor{ID: kernel.NewUUID(), Role: RoleOperator}
	taskID := kernel.NewUUID()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	var got commands.ClaimTaskCommand
	e := newTestRouter(t, Handlers{
		ClaimTask: handlerFunc[commands.ClaimTaskCommand, *task.Task](
			func(_ context.Context, cmd commands.ClaimTaskCommand) (*task.Task, error) {
				got = cmd
				assignee := cmd.OperatorID()
				return task.RestoreTask(cmd.TaskID(), task.Spec{
					Title:      "label cartons",
					Priority:   task.PriorityHigh,
					Type:       task.TypeCustom,
					AssigneeID: &assignee,
				}, task.InProgress, nil, now, now)
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/tasks/"+taskID.String()+"/claim", signed(t, operator), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, got.TaskID().IsEqual(taskID))
	assert.True(t, got.OperatorID().IsEqual(operator.ID))

	var body servers.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, servers.TaskStatusINPROGRESS, body.Status)
	require.NotNil(t, body.AssigneeId)
	assert.Equal(t, operator.ID.Bytes(), *body.AssigneeId)
}

func TestClaimTask_ConflictIsReported(t *testing.T) {
	e := newTestRouter(t, Handlers{
		ClaimTask: handlerFunc[commands.ClaimTaskCommand, *task.Task](
			func(context.Context, commands.ClaimTaskCommand) (*task.Task, error) {
				return nil, task.ErrAlreadyClaimed
			}),
	})
	operator := signed(t, Actor{ID: kernel.NewUUID(), Role: RoleOperator})

	rec := do(e, http.MethodPost, "/api/v1/tasks/"+kernel.NewUUID().String()+"/claim", operator, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, task.ErrAlreadyClaimed.Error())
}

func TestCreateShipment_ClientCreatesForItself(t *testing.T) {
	client := Actor{ID: kernel.NewUUID(), Role: RoleClient}
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	var got commands.CreateShipmentCommand
	e := newTestRouter(t, Handlers{
		CreateShipment: handlerFunc[commands.CreateShipmentCommand, *shipment.Shipment](
			func(_ context.Context, cmd commands.CreateShipmentCommand) (*shipment.Shipment, error) {
				got = cmd
				item, err := shipment.NewItem(kernel.NewUUID(), "Mug", "MUG-1", 3, "")
				if err != nil {
					return nil, err
				}
				return shipment.NewShipment(kernel.NewUUID(), cmd.ClientID(), cmd.TrackingCode(),
					cmd.Origin(), cmd.Destination(), cmd.Weight(), cmd.Notes(), []shipment.Item{item}, now)
			}),
	})

	// clientId in the body is ignored for clients
	body := `{"clientId":"` + kernel.NewUUID().String() + `","trackingCode":"TRK-1","weight":"2.5",` +
		`"items":[{"productName":"Mug","sku":"MUG-1","quantity":3}]}`
	rec := do(e, http.MethodPost, "/api/v1/shipments", signed(t, client), body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, got.ClientID().IsEqual(client.ID))
	assert.True(t, got.Weight().Equal(decimal.RequireFromString("2.5")))

	var created servers.Shipment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, servers.ShipmentStatusDRAFT, created.Status)
	assert.Equal(t, 3, created.ItemCount)
}

func TestCreateShipment_RejectsInvalidBody(t *testing.T) {
	e := newTestRouter(t, Handlers{})
	client := signed(t, Actor{ID: kernel.NewUUID(), Role: RoleClient})

	tests := []struct {
		name string
		body string
	}{
		{"no items", `{"trackingCode":"TRK-1","weight":"1","items":[]}`},
		{"weight not numeric", `{"trackingCode":"TRK-1","weight":"heavy","items":[{"productName":"a","sku":"b","quantity":1}]}`},
		{"zero quantity", `{"trackingCode":"TRK-1","weight":"1","items":[{"productName":"a","sku":"b","quantity":0}]}`},
		{"missing tracking code", `{"weight":"1","items":[{"productName":"a","sku":"b","quantity":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/v1/shipments", client, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestListShipments_ClientSeesOnlyOwn(t *testing.T) {
	client := Actor{ID: kernel.NewUUID(), Role: RoleClient}

	var got queries.ShipmentFilter
	e := newTestRouter(t, Handlers{
		ListShipments: handlerFunc[queries.ListShipmentsQuery, []queries.ShipmentResponse](
			func(_ context.Context, q queries.ListShipmentsQuery) ([]queries.ShipmentResponse, error) {
				got = q.Filter()
				return nil, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/shipments?clientId="+kernel.NewUUID().String(), signed(t, client), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, got.ClientID)
	assert.True(t, got.ClientID.IsEqual(client.ID))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetShipment_HidesOtherClientsShipments(t *testing.T) {
	owner := kernel.NewUUID()
	e := newTestRouter(t, Handlers{
		GetShipment: handlerFunc[queries.GetShipmentQuery, queries.ShipmentResponse](
			func(_ context.Context, q queries.GetShipmentQuery) (queries.ShipmentResponse, error) {
				return queries.ShipmentResponse{ID: q.ShipmentID(), ClientID: owner, Status: shipment.Draft}, nil
			}),
	})
	path := "/api/v1/shipments/" + kernel.NewUUID().String()

	stranger := signed(t, Actor{ID: kernel.NewUUID(), Role: RoleClient})
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, path, stranger, "").Code)

	self := signed(t, Actor{ID: owner, Role: RoleClient})
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, path, self, "").Code)
}

func TestRouter_RejectsUnknownEnumValue(t *testing.T) {
	e := newTestRouter(t, Handlers{})
	admin := signed(t, Actor{ID: kernel.NewUUID(), Role: RoleAdmin})

	rec := do(e, http.MethodGet, "/api/v1/tasks?status=SLEEPING", admin, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStreamInbox_ReplaysAfterResumePoint(t *testing.T) {
	user := Actor{ID: kernel.NewUUID(), Role: RoleOperator}
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	var got queries.ListInboxQuery
	e := newTestRouter(t, Handlers{
		ListInbox: handlerFunc[queries.ListInboxQuery, []queries.NotificationResponse](
			func(_ context.Context, q queries.ListInboxQuery) ([]queries.NotificationResponse, error) {
				got = q
				return []queries.NotificationResponse{
					{ID: kernel.NewUUID(), Seq: 8, Title: "Task assigned", Type: activity.NotificationTaskAssigned,
						EntityType: activity.EntityTask, CreatedAt: created},
					{ID: kernel.NewUUID(), Seq: 9, Title: "Task cancelled", Type: activity.NotificationTaskCancelled,
						EntityType: activity.EntityTask, CreatedAt: created},
				}, nil
			}),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inbox/stream?after=5", nil)
	req.Header.Set(echo.HeaderAuthorization, signed(t, user))
	req.Header.Set("Last-Event-ID", "7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, int64(7), got.AfterSeq())
	assert.True(t, got.UserID().IsEqual(user.ID))

	stream := rec.Body.String()
	assert.Contains(t, stream, "id: 8\nevent: notification\ndata: ")
	assert.Contains(t, stream, "id: 9\nevent: notification\ndata: ")
	assert.Less(t, strings.Index(stream, "id: 8"), strings.Index(stream, "id: 9"))
}

func TestStreamInbox_ResyncRereadsInbox(t *testing.T) {
	user := Actor{ID: kernel.NewUUID(), Role: RoleClient}
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	var afters []int64
	e := newFeedRouter(t, Handlers{
		ListInbox: handlerFunc[queries.ListInboxQuery, []queries.NotificationResponse](
			func(_ context.Context, q queries.ListInboxQuery) ([]queries.NotificationResponse, error) {
				afters = append(afters, q.AfterSeq())
				if len(afters) == 1 {
					return []queries.NotificationResponse{
						{ID: kernel.NewUUID(), Seq: 4, Title: "Shipment received", Type: activity.NotificationShipmentStatus,
							EntityType: activity.EntityShipment, CreatedAt: created},
					}, nil
				}
				return []queries.NotificationResponse{
					{ID: kernel.NewUUID(), Seq: 5, Title: "Shipment ready", Type: activity.NotificationShipmentStatus,
						EntityType: activity.EntityShipment, CreatedAt: created},
				}, nil
			}),
	}, scriptedFeed{{Seq: 3}, {Seq: feed.ResyncSeq}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inbox/stream", nil)
	req.Header.Set(echo.HeaderAuthorization, signed(t, user))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// the stale announcement is skipped, the resync is not
	assert.Equal(t, []int64{0, 4}, afters)
	assert.Contains(t, rec.Body.String(), "id: 5\nevent: notification\ndata: ")
}

func TestListTasks_StoreOutageIsUnavailable(t *testing.T) {
	e := newTestRouter(t, Handlers{
		ListTasks: handlerFunc[queries.ListTasksQuery, []queries.TaskResponse](
			func(context.Context, queries.ListTasksQuery) ([]queries.TaskResponse, error) {
				return nil, fmt.Errorf("rows: %w", driver.ErrBadConn)
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/tasks", signed(t, Actor{ID: kernel.NewUUID(), Role: RoleOperator}), "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

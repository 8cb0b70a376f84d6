package http

import (
	"context"
	"log/slog"
	"net/http"

	"prepcenter/internal/core/application/usecases/commands"
	"prepcenter/internal/core/application/usecases/queries"
	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/generated/servers"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Handler is the shape shared by every command and query handler.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Handlers groups the use cases the API exposes.
type Handlers struct {
	CreateShipment    Handler[commands.CreateShipmentCommand, *shipment.Shipment]
	AdvanceShipment   Handler[commands.AdvanceShipmentCommand, *shipment.Shipment]
	SetShipmentStatus Handler[commands.SetShipmentStatusCommand, *shipment.Shipment]
	CreateTask        Handler[commands.CreateTaskCommand, *task.Task]
	ClaimTask         Handler[commands.ClaimTaskCommand, *task.Task]
	CompleteTask      Handler[commands.CompleteTaskCommand, *task.Task]
	CancelTask        Handler[commands.CancelTaskCommand, *task.Task]
	CreateStation     Handler[commands.CreateStationCommand, *station.Station]
	UpdateStation     Handler[commands.UpdateStationCommand, *station.Station]

	GetShipment         Handler[queries.GetShipmentQuery, queries.ShipmentResponse]
	ListShipments       Handler[queries.ListShipmentsQuery, []queries.ShipmentResponse]
	GetTask             Handler[queries.GetTaskQuery, queries.TaskResponse]
	ListTasks           Handler[queries.ListTasksQuery, []queries.TaskResponse]
	GetStation          Handler[queries.GetStationQuery, queries.StationResponse]
	ListStations        Handler[queries.ListStationsQuery, []queries.StationResponse]
	GetStationLoadAudit Handler[queries.GetStationLoadAuditQuery, []queries.StationLoadAuditResponse]
	ListInbox           Handler[queries.ListInboxQuery, []queries.NotificationResponse]
	ListActivity        Handler[queries.ListActivityQuery, []queries.ActivityResponse]
}

// Server implements servers.ServerInterface on top of the application handlers.
type Server struct {
	handlers Handlers
	feed     InboxFeed
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, feed InboxFeed, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		feed:     feed,
		metrics:  m,
		logger:   logger.With("component", "http"),
	}
}

// CreateShipment handles POST /api/v1/shipments. Clients always create for themselves;
// administrators name the client.
func (s *Server) CreateShipment(c echo.Context) error {
	actor, err := authorize(c, RoleClient, RoleAdmin)
	if err != nil {
		return err
	}

	var body servers.CreateShipmentJSONRequestBody
	if err = bindBody(c, &body); err != nil {
		return err
	}

	clientID := actor.ID
	if actor.Role == RoleAdmin {
		if body.ClientId == nil {
			return s.respondError(c, "create_shipment", errs.NewValueIsRequiredError("clientId"))
		}
		if clientID, err = kernel.UUIDFromBytes(body.ClientId[:]); err != nil {
			return s.respondError(c, "create_shipment", err)
		}
	}

	weight, err := decimal.NewFromString(body.Weight)
	if err != nil {
		return s.respondError(c, "create_shipment", errs.NewValueIsInvalidErrorWithCause("weight", err))
	}

	items := make([]commands.ItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, commands.ItemInput{
			ProductName: item.ProductName,
			SKU:         item.Sku,
			Quantity:    item.Quantity,
			PrepType:    value(item.PrepType),
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(actor.ID, clientID, body.TrackingCode,
		value(body.Origin), value(body.Destination), weight, value(body.Notes), items)
	if err != nil {
		return s.respondError(c, "create_shipment", err)
	}

	created, err := s.handlers.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "create_shipment", err)
	}
	return c.JSON(http.StatusCreated, shipmentFromDomain(created))
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(c echo.Context, params servers.ListShipmentsParams) error {
	actor, err := authorize(c, RoleClient, RoleOperator, RoleAdmin)
	if err != nil {
		return err
	}

	filter := queries.ShipmentFilter{Limit: deref(params.Limit), Offset: deref(params.Offset)}
	if filter.ClientID, err = uuidIn(params.ClientId); err != nil {
		return s.respondError(c, "list_shipments", err)
	}
	if actor.Role == RoleClient {
		own := actor.ID
		filter.ClientID = &own
	}
	if params.Status != nil {
		status, parseErr := shipment.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return s.respondError(c, "list_shipments", parseErr)
		}
		filter.Status = &status
	}

	query, err := queries.NewListShipmentsQuery(filter)
	if err != nil {
		return s.respondError(c, "list_shipments", err)
	}
	list, err := s.handlers.ListShipments.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, "list_shipments", err)
	}
	return c.JSON(http.StatusOK, mapSlice(list, shipmentFromQuery))
}

// GetShipment handles GET /api/v1/shipments/{shipmentId}. A client asking for someone
// else's shipment gets 404, the same as for a missing one.
func (s *Server) GetShipment(c echo.Context, shipmentID openapi_types.UUID) error {
	actor, err := authorize(c, RoleClient, RoleOperator, RoleAdmin)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return s.respondError(c, "get_shipment", err)
	}
	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return s.respondError(c, "get_shipment", err)
	}

	found, err := s.handlers.GetShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, "get_shipment", err)
	}
	if actor.Role == RoleClient && !found.ClientID.IsEqual(actor.ID) {
		return s.respondError(c, "get_shipment", errs.NewObjectNotFoundError("shipment", id))
	}
	return c.JSON(http.StatusOK, shipmentFromQuery(found))
}

// AdvanceShipment handles POST /api/v1/shipments/{shipmentId}/advance.
func (s *Server) AdvanceShipment(c echo.Context, shipmentID openapi_types.UUID) error {
	actor, err := authorize(c, RoleOperator, RoleAdmin)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return s.respondError(c, "advance_shipment", err)
	}
	cmd, err := commands.NewAdvanceShipmentCommand(id, actor.ID)
	if err != nil {
		return s.respondError(c, "advance_shipment", err)
	}

	advanced, err := s.handlers.AdvanceShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "advance_shipment", err)
	}
	return c.JSON(http.StatusOK, shipmentFromDomain(advanced))
}

// SetShipmentStatus handles PUT /api/v1/shipments/{shipmentId}/status, the unguarded
// administrative override.
func (s *Server) SetShipmentStatus(c echo.Context, shipmentID openapi_types.UUID) error {
	actor, err := authorize(c, RoleAdmin)
	if err != nil {
		return err
	}

	var body servers.SetShipmentStatusJSONRequestBody
	if err = bindBody(c, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return s.respondError(c, "set_shipment_status", err)
	}
	target, err := shipment.ParseStatus(string(body.Status))
	if err != nil {
		return s.respondError(c, "set_shipment_status", err)
	}
	cmd, err := commands.NewSetShipmentStatusCommand(id, target, actor.ID)
	if err != nil {
		return s.respondError(c, "set_shipment_status", err)
	}

	updated, err := s.handlers.SetShipmentStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "set_shipment_status", err)
	}
	return c.JSON(http.StatusOK, shipmentFromDomain(updated))
}

// CreateTask handles POST /api/v1/tasks.
func (s *Server) CreateTask(c echo.Context) error {
	actor, err := authorize(c, RoleAdmin)
	if err != nil {
		return err
	}

	var body servers.CreateTaskJSONRequestBody
	if err = bindBody(c, &body); err != nil {
		return err
	}

	spec := task.Spec{
		Title:       body.Title,
		Description: value(body.Description),
		DueDate:     utc(body.DueDate),
	}
	if body.Priority != nil {
		if spec.Priority, err = task.ParsePriority(string(*body.Priority)); err != nil {
			return s.respondError(c, "create_task", err)
		}
	}
	if body.Type != nil {
		if spec.Type, err = task.ParseType(string(*body.Type)); err != nil {
			return s.respondError(c, "create_task", err)
		}
	}
	if spec.AssigneeID, err = uuidIn(body.AssigneeId); err != nil {
		return s.respondError(c, "create_task", err)
	}
	if spec.ShipmentID, err = uuidIn(body.ShipmentId); err != nil {
		return s.respondError(c, "create_task", err)
	}
	if spec.StationID, err = uuidIn(body.StationId); err != nil {
		return s.respondError(c, "create_task", err)
	}

	cmd, err := commands.NewCreateTaskCommand(spec, actor.ID)
	if err != nil {
		return s.respondError(c, "create_task", err)
	}
	created, err := s.handlers.CreateTask.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "create_task", err)
	}
	return c.JSON(http.StatusCreated, taskFromDomain(created))
}

// ListTasks handles GET /api/v1/tasks.
func (s *Server) ListTasks(c echo.Context, params servers.ListTasksParams) error {
	if _, err := authorize(c, RoleOperator, RoleAdmin); err != nil {
		return err
	}

	filter := queries.TaskFilter{Limit: deref(params.Limit), Offset: deref(params.Offset)}
	var err error
	if params.Status != nil {
		status, parseErr := task.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return s.respondError(c, "list_tasks", parseErr)
		}
		filter.Status = &status
	}
	if filter.AssigneeID, err = uuidIn(params.AssigneeId); err != nil {
		return s.respondError(c, "list_tasks", err)
	}
	if filter.StationID, err = uuidIn(params.StationId); err != nil {
		return s.respondError(c, "list_tasks", err)
	}
	if filter.ShipmentID, err = uuidIn(params.ShipmentId); err != nil {
		return s.respondError(c, "list_tasks", err)
	}

	query, err := queries.NewListTasksQuery(filter)
	if err != nil {
		return s.respondError(c, "list_tasks", err)
	}
	list, err := s.handlers.ListTasks.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, "list_tasks", err)
	}
	return c.JSON(http.StatusOK, mapSlice(list, taskFromQuery))
}

// GetTask handles GET /api/v1/tasks/{taskId}.
func (s *Server) GetTask(c echo.Context, taskID openapi_types.UUID) error {
	if _, err := authorize(c, RoleOperator, RoleAdmin); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(taskID[:])
	if err != nil {
		return s.respondError(c, "get_task", err)
	}
	query, err := queries.NewGetTaskQuery(id)
	if err != nil {
		return s.respondError(c, "get_task", err)
	}
	found, err := s.handlers.GetTask.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, "get_task", err)
	}
	return c.JSON(http.StatusOK, taskFromQuery(found))
}

// ClaimTask handles POST /api/v1/tasks/{taskId}/claim for the calling operator.
func (s *Server) ClaimTask(c echo.Context, taskID openapi_types.UUID) error {
	actor, err := authorize(c, RoleOperator, RoleAdmin)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(taskID[:])
	if err != nil {
		return s.respondError(c, "claim_task", err)
	}
	cmd, err := commands.NewClaimTaskCommand(id, actor.ID)
	if err != nil {
		return s.respondError(c, "claim_task", err)
	}
	claimed, err := s.handlers.ClaimTask.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "claim_task", err)
	}
	return c.JSON(http.StatusOK, taskFromDomain(claimed))
}

// CompleteTask handles POST /api/v1/tasks/{taskId}/complete for the calling holder.
func (s *Server) CompleteTask(c echo.Context, taskID openapi_types.UUID) error {
	actor, err := authorize(c, RoleOperator, RoleAdmin)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(taskID[:])
	if err != nil {
		return s.respondError(c, "complete_task", err)
	}
	cmd, err := commands.NewCompleteTaskCommand(id, actor.ID)
	if err != nil {
		return s.respondError(c, "complete_task", err)
	}
	completed, err := s.handlers.CompleteTask.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "complete_task", err)
	}
	return c.JSON(http.StatusOK, taskFromDomain(completed))
}

// CancelTask handles POST /api/v1/tasks/{taskId}/cancel.
func (s *Server) CancelTask(c echo.Context, taskID openapi_types.UUID) error {
	actor, err := authorize(c, RoleAdmin)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(taskID[:])
	if err != nil {
		return s.respondError(c, "cancel_task", err)
	}
	cmd, err := commands.NewCancelTaskCommand(id, actor.ID)
	if err != nil {
		return s.respondError(c, "cancel_task", err)
	}
	cancelled, err := s.handlers.CancelTask.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "cancel_task", err)
	}
	return c.JSON(http.StatusOK, taskFromDomain(cancelled))
}

// CreateStation handles POST /api/v1/stations.
func (s *Server) CreateStation(c echo.Context) error {
	actor, err := authorize(c, RoleAdmin)
	if err != nil {
		return err
	}

	var body servers.CreateStationJSONRequestBody
	if err = bindBody(c, &body); err != nil {
		return err
	}

	kind, err := station.ParseType(string(body.Type))
	if err != nil {
		return s.respondError(c, "create_station", err)
	}
	operatorID, err := uuidIn(body.OperatorId)
	if err != nil {
		return s.respondError(c, "create_station", err)
	}

	cmd, err := commands.NewCreateStationCommand(body.Name, kind, body.Capacity, operatorID, actor.ID)
	if err != nil {
		return s.respondError(c, "create_station", err)
	}
	created, err := s.handlers.CreateStation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "create_station", err)
	}
	return c.JSON(http.StatusCreated, stationFromDomain(created))
}

// ListStations handles GET /api/v1/stations.
func (s *Server) ListStations(c echo.Context, params servers.ListStationsParams) error {
	if _, err := authorize(c, RoleOperator, RoleAdmin); err != nil {
		return err
	}

	var status *station.Status
	if params.Status != nil {
		parsed, err := station.ParseStatus(string(*params.Status))
		if err != nil {
			return s.respondError(c, "list_stations", err)
		}
		status = &parsed
	}

	query, err := queries.NewListStationsQuery(status)
	if err != nil {
		return s.respondError(c, "list_stations", err)
	}
	list, err := s.handlers.ListStations.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, "list_stations", err)
	}
	return c.JSON(http.StatusOK, mapSlice(list, stationFromQuery))
}

// GetStation handles GET /api/v1/stations/{stationId}.
func (s *Server) GetStation(c echo.Context, stationID openapi_types.UUID) error {
	if _, err := authorize(c, RoleOperator, RoleAdmin); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(stationID[:])
	if err != nil {
		return s.respondError(c, "get_station", err)
	}
	query, err := queries.NewGetStationQuery(id)
	if err != nil {
		return s.respondError(c, "get_station", err)
	}
	found, err := s.handlers.GetStation.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, "get_station", err)
	}
	return c.JSON(http.StatusOK, stationFromQuery(found))
}

// UpdateStation handles PATCH /api/v1/stations/{stationId}. Absent fields stay unchanged;
// the load is never written here.
func (s *Server) UpdateStation(c echo.Context, stationID openapi_types.UUID) error {
	actor, err := authorize(c, RoleAdmin)
	if err != nil {
		return err
	}

	var body servers.UpdateStationJSONRequestBody
	if err = bindBody(c, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(stationID[:])
	if err != nil {
		return s.respondError(c, "update_station", err)
	}

	profile := station.Profile{
		Name:          body.Name,
		Capacity:      body.Capacity,
		ClearOperator: body.ClearOperator != nil && *body.ClearOperator,
	}
	if body.Type != nil {
		kind, parseErr := station.ParseType(string(*body.Type))
		if parseErr != nil {
			return s.respondError(c, "update_station", parseErr)
		}
		profile.Type = &kind
	}
	if body.Status != nil {
		status, parseErr := station.ParseStatus(string(*body.Status))
		if parseErr != nil {
			return s.respondError(c, "update_station", parseErr)
		}
		profile.Status = &status
	}
	if profile.OperatorID, err = uuidIn(body.OperatorId); err != nil {
		return s.respondError(c, "update_station", err)
	}

	cmd, err := commands.NewUpdateStationCommand(id, profile, actor.ID)
	if err != nil {
		return s.respondError(c, "update_station", err)
	}
	updated, err := s.handlers.UpdateStation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "update_station", err)
	}
	return c.JSON(http.StatusOK, stationFromDomain(updated))
}

// GetStationLoadAudit handles GET /api/v1/stations/load-audit.
func (s *Server) GetStationLoadAudit(c echo.Context) error {
	if _, err := authorize(c, RoleAdmin); err != nil {
		return err
	}

	audit, err := s.handlers.GetStationLoadAudit.Handle(c.Request().Context(), queries.NewGetStationLoadAuditQuery())
	if err != nil {
		return s.respondError(c, "station_load_audit", err)
	}
	return c.JSON(http.StatusOK, mapSlice(audit, func(r queries.StationLoadAuditResponse) servers.StationLoad {
		return servers.StationLoad{
			StationId:    r.StationID.Bytes(),
			Name:         r.Name,
			Capacity:     r.Capacity,
			RecordedLoad: r.RecordedLoad,
			ActiveTasks:  r.ActiveTasks,
			Drift:        r.Drift(),
		}
	}))
}

// ListInbox handles GET /api/v1/inbox for the caller's own notifications.
func (s *Server) ListInbox(c echo.Context, params servers.ListInboxParams) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListInboxQuery(actor.ID, deref(params.After), deref(params.Limit))
	if err != nil {
		return s.respondError(c, "list_inbox", err)
	}
	list, err := s.handlers.ListInbox.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, "list_inbox", err)
	}
	return c.JSON(http.StatusOK, mapSlice(list, notificationFromQuery))
}

// ListActivity handles GET /api/v1/activity.
func (s *Server) ListActivity(c echo.Context, params servers.ListActivityParams) error {
	if _, err := authorize(c, RoleOperator, RoleAdmin); err != nil {
		return err
	}

	filter := queries.ActivityFilter{Limit: deref(params.Limit)}
	var err error
	if params.EntityType != nil {
		entityType := activity.EntityType(*params.EntityType)
		filter.EntityType = &entityType
	}
	if filter.EntityID, err = uuidIn(params.EntityId); err != nil {
		return s.respondError(c, "list_activity", err)
	}
	if filter.ActorID, err = uuidIn(params.ActorId); err != nil {
		return s.respondError(c, "list_activity", err)
	}

	query, err := queries.NewListActivityQuery(filter)
	if err != nil {
		return s.respondError(c, "list_activity", err)
	}
	list, err := s.handlers.ListActivity.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, "list_activity", err)
	}
	return c.JSON(http.StatusOK, mapSlice(list, activityFromQuery))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

package http

import (
	"time"

	"prepcenter/internal/core/application/usecases/queries"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func uuidOut(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func uuidIn(id *openapi_types.UUID) (*kernel.UUID, error) {
	return kernel.UUIDFromPtr(id)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func shipmentFromDomain(s *shipment.Shipment) servers.Shipment {
	items := make([]servers.Item, 0, len(s.Items()))
	for _, item := range s.Items() {
		items = append(items, servers.Item{
			Id:          item.ID().Bytes(),
			ProductName: item.ProductName(),
			Sku:         item.SKU(),
			Quantity:    item.Quantity(),
			PrepType:    optional(item.PrepType()),
		})
	}

	return servers.Shipment{
		Id:           s.ID().Bytes(),
		ClientId:     s.ClientID().Bytes(),
		TrackingCode: s.TrackingCode(),
		Status:       servers.ShipmentStatus(s.Status().String()),
		Origin:       optional(s.Origin()),
		Destination:  optional(s.Destination()),
		ItemCount:    s.ItemCount(),
		Weight:       s.Weight().String(),
		Notes:        optional(s.Notes()),
		Items:        items,
		CreatedAt:    s.CreatedAt().UTC(),
		UpdatedAt:    s.UpdatedAt().UTC(),
	}
}

func shipmentFromQuery(r queries.ShipmentResponse) servers.Shipment {
	items := make([]servers.Item, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, servers.Item{
			Id:          item.ID.Bytes(),
			ProductName: item.ProductName,
			Sku:         item.SKU,
			Quantity:    item.Quantity,
			PrepType:    optional(item.PrepType),
		})
	}

	return servers.Shipment{
		Id:           r.ID.Bytes(),
		ClientId:     r.ClientID.Bytes(),
		TrackingCode: r.TrackingCode,
		Status:       servers.ShipmentStatus(r.Status.String()),
		Origin:       optional(r.Origin),
		Destination:  optional(r.Destination),
		ItemCount:    r.ItemCount,
		Weight:       r.Weight.String(),
		Notes:        optional(r.Notes),
		Items:        items,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func taskFromDomain(t *task.Task) servers.Task {
	return servers.Task{
		Id:          t.ID().Bytes(),
		Title:       t.Title(),
		Description: optional(t.Description()),
		Status:      servers.TaskStatus(t.Status().String()),
		Priority:    servers.TaskPriority(t.Priority().String()),
		Type:        servers.TaskType(t.Type().String()),
		AssigneeId:  uuidOut(t.AssigneeID()),
		ShipmentId:  uuidOut(t.ShipmentID()),
		StationId:   uuidOut(t.StationID()),
		DueDate:     utc(t.DueDate()),
		CompletedAt: utc(t.CompletedAt()),
		CreatedAt:   t.CreatedAt().UTC(),
		UpdatedAt:   t.UpdatedAt().UTC(),
	}
}

func taskFromQuery(r queries.TaskResponse) servers.Task {
	return servers.Task{
		Id:          r.ID.Bytes(),
		Title:       r.Title,
		Description: optional(r.Description),
		Status:      servers.TaskStatus(r.Status.String()),
		Priority:    servers.TaskPriority(r.Priority.String()),
		Type:        servers.TaskType(r.Type.String()),
		AssigneeId:  uuidOut(r.AssigneeID),
		ShipmentId:  uuidOut(r.ShipmentID),
		StationId:   uuidOut(r.StationID),
		DueDate:     r.DueDate,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func stationFromDomain(s *station.Station) servers.Station {
	return servers.Station{
		Id:          s.ID().Bytes(),
		Name:        s.Name(),
		Type:        servers.StationType(s.Type().String()),
		Status:      servers.StationStatus(s.Status().String()),
		Capacity:    s.Capacity(),
		CurrentLoad: s.CurrentLoad(),
		OperatorId:  uuidOut(s.OperatorID()),
		CreatedAt:   s.CreatedAt().UTC(),
		UpdatedAt:   s.UpdatedAt().UTC(),
	}
}

func stationFromQuery(r queries.StationResponse) servers.Station {
	return servers.Station{
		Id:          r.ID.Bytes(),
		Name:        r.Name,
		Type:        servers.StationType(r.Type.String()),
		Status:      servers.StationStatus(r.Status.String()),
		Capacity:    r.Capacity,
		CurrentLoad: r.CurrentLoad,
		OperatorId:  uuidOut(r.OperatorID),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func notificationFromQuery(r queries.NotificationResponse) servers.Notification {
	return servers.Notification{
		Id:         r.ID.Bytes(),
		Seq:        r.Seq,
		Title:      r.Title,
		Message:    r.Message,
		Type:       string(r.Type),
		EntityType: servers.EntityType(r.EntityType),
		EntityId:   uuidOut(r.EntityID),
		CreatedAt:  r.CreatedAt,
	}
}

func activityFromQuery(r queries.ActivityResponse) servers.ActivityEntry {
	return servers.ActivityEntry{
		Id:         r.ID.Bytes(),
		ActorId:    r.ActorID.Bytes(),
		Action:     r.Action,
		EntityType: servers.EntityType(r.EntityType),
		EntityId:   uuidOut(r.EntityID),
		CreatedAt:  r.CreatedAt,
	}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

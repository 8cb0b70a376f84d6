// Package queries holds the read side. Handlers read straight from the tables with raw SQL
// and return flat response structs; they never load aggregates.
package queries

import (
	"time"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/core/domain/model/task"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

type ShipmentResponse struct {
	ID           kernel.UUID
	ClientID     kernel.UUID
	TrackingCode string
	Status       shipment.Status
	Origin       string
	Destination  string
	ItemCount    int
	Weight       decimal.Decimal
	Notes        string
	Items        []ItemResponse
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ItemResponse struct {
	ID          kernel.UUID
	ProductName string
	SKU         string
	Quantity    int
	PrepType    string
}

type TaskResponse struct {
	ID          kernel.UUID
	Title       string
	Description string
	Status      task.Status
	Priority    task.Priority
	Type        task.Type
	AssigneeID  *kernel.UUID
	ShipmentID  *kernel.UUID
	StationID   *kernel.UUID
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type StationResponse struct {
	ID          kernel.UUID
	Name        string
	Type        station.Type
	Status      station.Status
	Capacity    int
	CurrentLoad int
	OperatorID  *kernel.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NotificationResponse struct {
	ID         kernel.UUID
	Seq        int64
	Title      string
	Message    string
	Type       activity.NotificationType
	EntityType activity.EntityType
	EntityID   *kernel.UUID
	CreatedAt  time.Time
}

type ActivityResponse struct {
	ID         kernel.UUID
	ActorID    kernel.UUID
	Action     string
	EntityType activity.EntityType
	EntityID   *kernel.UUID
	CreatedAt  time.Time
}

func pageSize(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	out, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func optionalBytes(id *kernel.UUID) any {
	if id == nil {
		return nil
	}
	return id.Bytes()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

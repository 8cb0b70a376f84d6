// Package taskrepo persists tasks and implements the conditional updates that serialize
// claims, completions and cancellations.
package taskrepo

import (
	"time"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/task"

	"github.com/google/uuid"
)

type TaskDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title       string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"size:32;index;not null"`
	Priority    string     `gorm:"size:16;not null"`
	Type        string     `gorm:"size:16;not null"`
	AssigneeID  *uuid.UUID `gorm:"type:uuid;index"`
	ShipmentID  *uuid.UUID `gorm:"type:uuid;index"`
	StationID   *uuid.UUID `gorm:"type:uuid;index"`
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (TaskDTO) TableName() string {
	return "tasks"
}

func fromDomain(t *task.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID().Bytes(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		Type:        t.Type().String(),
		AssigneeID:  kernel.PtrBytes(t.AssigneeID()),
		ShipmentID:  kernel.PtrBytes(t.ShipmentID()),
		StationID:   kernel.PtrBytes(t.StationID()),
		DueDate:     t.DueDate(),
		CompletedAt: t.CompletedAt(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := task.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := task.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}
	kind, err := task.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}
	assigneeID, err := kernel.UUIDFromPtr(dto.AssigneeID)
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromPtr(dto.ShipmentID)
	if err != nil {
		return nil, err
	}
	stationID, err := kernel.UUIDFromPtr(dto.StationID)
	if err != nil {
		return nil, err
	}

	spec := task.Spec{
		Title:       dto.Title,
		Description: dto.Description,
		Priority:    priority,
		Type:        kind,
		AssigneeID:  assigneeID,
		ShipmentID:  shipmentID,
		StationID:   stationID,
		DueDate:     utcPtr(dto.DueDate),
	}
	return task.RestoreTask(id, spec, status, utcPtr(dto.CompletedAt), dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

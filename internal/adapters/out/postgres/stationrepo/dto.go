// Package stationrepo persists stations. It is the only writer of current_load.
package stationrepo

import (
	"time"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// StationDTO is the stations row. The CHECK constraints back the load bounds at the
// storage level as well.
type StationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"size:128;not null"`
	Type        string     `gorm:"size:16;not null"`
	Status      string     `gorm:"size:16;index;not null"`
	Capacity    int        `gorm:"not null;check:chk_stations_capacity,capacity > 0"`
	CurrentLoad int        `gorm:"not null;default:0;check:chk_stations_load,current_load >= 0 AND current_load <= capacity"`
	OperatorID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

func (StationDTO) TableName() string {
	return "stations"
}

func fromDomain(s *station.Station) StationDTO {
	return StationDTO{
		ID:          s.ID().Bytes(),
		Name:        s.Name(),
		Type:        s.Type().String(),
		Status:      s.Status().String(),
		Capacity:    s.Capacity(),
		CurrentLoad: s.CurrentLoad(),
		OperatorID:  kernel.PtrBytes(s.OperatorID()),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func toDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	kind, err := station.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}
	status, err := station.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	operatorID, err := kernel.UUIDFromPtr(dto.OperatorID)
	if err != nil {
		return nil, err
	}

	return station.RestoreStation(id, dto.Name, kind, status, dto.Capacity, dto.CurrentLoad, operatorID,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}

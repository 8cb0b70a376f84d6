// Package shipmentrepo persists shipment aggregates and their item lines.
package shipmentrepo

import (
	"time"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO is the shipments row. Status holds the wire name so that raw SQL can
// filter on it directly.
type ShipmentDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	TrackingCode string          `gorm:"size:64;not null"`
	Status       string          `gorm:"size:32;index;not null"`
	Origin       string          `gorm:"size:255"`
	Destination  string          `gorm:"size:255"`
	ItemCount    int             `gorm:"not null"`
	Weight       decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Notes        string          `gorm:"type:text"`
	Items        []ItemDTO       `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ItemDTO is one declared item line.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductName string    `gorm:"size:255;not null"`
	SKU         string    `gorm:"size:64;not null"`
	Quantity    int       `gorm:"not null"`
	PrepType    string    `gorm:"size:64"`
}

func (ItemDTO) TableName() string {
	return "shipment_items"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	items := make([]ItemDTO, 0, len(s.Items()))
	for _, item := range s.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			ShipmentID:  s.ID().Bytes(),
			ProductName: item.ProductName(),
			SKU:         item.SKU(),
			Quantity:    item.Quantity(),
			PrepType:    item.PrepType(),
		})
	}

	return ShipmentDTO{
		ID:           s.ID().Bytes(),
		ClientID:     s.ClientID().Bytes(),
		TrackingCode: s.TrackingCode(),
		Status:       s.Status().String(),
		Origin:       s.Origin(),
		Destination:  s.Destination(),
		ItemCount:    s.ItemCount(),
		Weight:       s.Weight(),
		Notes:        s.Notes(),
		Items:        items,
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]shipment.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, idErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := shipment.NewItem(itemID, itemDTO.ProductName, itemDTO.SKU, itemDTO.Quantity, itemDTO.PrepType)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return shipment.RestoreShipment(id, clientID, dto.TrackingCode, status, dto.Origin, dto.Destination,
		dto.ItemCount, dto.Weight, dto.Notes, items, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}

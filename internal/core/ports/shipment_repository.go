package ports

import (
	"context"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipment aggregates.
type ShipmentRepository interface {
	// Add stores a new shipment together with its items.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get returns the shipment or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// UpdateStatusIf writes the aggregate's status only if the stored status still equals
	// expected. It reports false when the row did not match, meaning a concurrent writer won.
	UpdateStatusIf(ctx context.Context, aggregate *shipment.Shipment, expected shipment.Status) (bool, error)

	// UpdateStatus writes the aggregate's status unconditionally.
	UpdateStatus(ctx context.Context, aggregate *shipment.Shipment) error
}

package queries

import (
	"context"

	"prepcenter/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetShipmentQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle returns the shipment with items sorted by SKU, or ObjectNotFound.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	db := h.db.WithContext(ctx)

	rows, err := db.Raw(`SELECT `+shipmentColumns+` FROM shipments WHERE id = ?`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return ShipmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentResponse{}, err
		}
		return ShipmentResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID())
	}
	resp, err := scanShipment(rows)
	if err != nil {
		return ShipmentResponse{}, err
	}
	rows.Close()

	items, err := db.Raw(`
		SELECT id, product_name, sku, quantity, prep_type
		FROM shipment_items
		WHERE shipment_id = ?
		ORDER BY sku, id
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return ShipmentResponse{}, err
	}
	defer items.Close()

	resp.Items = make([]ItemResponse, 0, resp.ItemCount)
	for items.Next() {
		var item ItemResponse
		var id uuid.UUID

		if err = items.Scan(&id, &item.ProductName, &item.SKU, &item.Quantity, &item.PrepType); err != nil {
			return ShipmentResponse{}, err
		}
		if item.ID, err = toUUID(id); err != nil {
			return ShipmentResponse{}, err
		}
		resp.Items = append(resp.Items, item)
	}
	if err = items.Err(); err != nil {
		return ShipmentResponse{}, err
	}

	return resp, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle returns shipment headers without item lines.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	f := query.Filter()

	var status any
	if f.Status != nil {
		status = f.Status.String()
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE (CAST(? AS uuid) IS NULL OR client_id = ?)
			AND (CAST(? AS text) IS NULL OR status = ?)
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, optionalBytes(f.ClientID), optionalBytes(f.ClientID), status, status, f.Limit, f.Offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0)
	for rows.Next() {
		s, scanErr := scanShipment(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

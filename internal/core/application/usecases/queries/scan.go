package queries

import (
	"database/sql"
	"time"

	"prepcenter/internal/core/domain/model/shipment"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/core/domain/model/task"

	"github.com/google/uuid"
)

const shipmentColumns = `id, client_id, tracking_code, status, origin, destination, item_count, weight, notes,
	created_at, updated_at`

const taskColumns = `id, title, description, status, priority, type, assignee_id, shipment_id, station_id,
	due_date, completed_at, created_at, updated_at`

const stationColumns = `id, name, type, status, capacity, current_load, operator_id, created_at, updated_at`

func scanShipment(rows *sql.Rows) (ShipmentResponse, error) {
	var resp ShipmentResponse
	var id, clientID uuid.UUID
	var status string

	if err := rows.Scan(&id, &clientID, &resp.TrackingCode, &status, &resp.Origin, &resp.Destination,
		&resp.ItemCount, &resp.Weight, &resp.Notes, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
		return ShipmentResponse{}, err
	}

	var err error
	if resp.ID, err = toUUID(id); err != nil {
		return ShipmentResponse{}, err
	}
	if resp.ClientID, err = toUUID(clientID); err != nil {
		return ShipmentResponse{}, err
	}
	if resp.Status, err = shipment.ParseStatus(status); err != nil {
		return ShipmentResponse{}, err
	}
	resp.CreatedAt = resp.CreatedAt.UTC()
	resp.UpdatedAt = resp.UpdatedAt.UTC()
	return resp, nil
}

func scanTask(rows *sql.Rows) (TaskResponse, error) {
	var resp TaskResponse
	var id uuid.UUID
	var assigneeID, shipmentID, stationID uuid.NullUUID
	var status, priority, kind string
	var dueDate, completedAt *time.Time

	if err := rows.Scan(&id, &resp.Title, &resp.Description, &status, &priority, &kind,
		&assigneeID, &shipmentID, &stationID, &dueDate, &completedAt, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
		return TaskResponse{}, err
	}

	var err error
	if resp.ID, err = toUUID(id); err != nil {
		return TaskResponse{}, err
	}
	if resp.Status, err = task.ParseStatus(status); err != nil {
		return TaskResponse{}, err
	}
	if resp.Priority, err = task.ParsePriority(priority); err != nil {
		return TaskResponse{}, err
	}
	if resp.Type, err = task.ParseType(kind); err != nil {
		return TaskResponse{}, err
	}
	if resp.AssigneeID, err = toOptionalUUID(assigneeID); err != nil {
		return TaskResponse{}, err
	}
	if resp.ShipmentID, err = toOptionalUUID(shipmentID); err != nil {
		return TaskResponse{}, err
	}
	if resp.StationID, err = toOptionalUUID(stationID); err != nil {
		return TaskResponse{}, err
	}
	resp.DueDate = utcPtr(dueDate)
	resp.CompletedAt = utcPtr(completedAt)
	resp.CreatedAt = resp.CreatedAt.UTC()
	resp.UpdatedAt = resp.UpdatedAt.UTC()
	return resp, nil
}

func scanStation(rows *sql.Rows) (StationResponse, error) {
	var resp StationResponse
	var id uuid.UUID
	var operatorID uuid.NullUUID
	var kind, status string

	if err := rows.Scan(&id, &resp.Name, &kind, &status, &resp.Capacity, &resp.CurrentLoad, &operatorID,
		&resp.CreatedAt, &resp.UpdatedAt); err != nil {
		return StationResponse{}, err
	}

	var err error
	if resp.ID, err = toUUID(id); err != nil {
		return StationResponse{}, err
	}
	if resp.Type, err = station.ParseType(kind); err != nil {
		return StationResponse{}, err
	}
	if resp.Status, err = station.ParseStatus(status); err != nil {
		return StationResponse{}, err
	}
	if resp.OperatorID, err = toOptionalUUID(operatorID); err != nil {
		return StationResponse{}, err
	}
	resp.CreatedAt = resp.CreatedAt.UTC()
	resp.UpdatedAt = resp.UpdatedAt.UTC()
	return resp, nil
}

package postgres

import (
	"prepcenter/internal/adapters/out/postgres/activityrepo"
	"prepcenter/internal/adapters/out/postgres/notificationrepo"
	"prepcenter/internal/adapters/out/postgres/shipmentrepo"
	"prepcenter/internal/adapters/out/postgres/stationrepo"
	"prepcenter/internal/adapters/out/postgres/taskrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ItemDTO{},
		&stationrepo.StationDTO{},
		&taskrepo.TaskDTO{},
		&notificationrepo.NotificationDTO{},
		&notificationrepo.RelayCursorDTO{},
		&activityrepo.EntryDTO{},
	)
}

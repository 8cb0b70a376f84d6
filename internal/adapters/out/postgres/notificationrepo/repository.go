package notificationrepo

import (
	"context"
	"encoding/json"
	"time"

	"prepcenter/internal/adapters/out/postgres/pgerrs"
	"prepcenter/internal/core/domain/model/activity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Channel is the LISTEN/NOTIFY channel announcing new inbox rows.
const Channel = "inbox_notifications"

// appendLockKey is the transaction-level advisory lock held while a row is inserted. With
// inserts serialised, sequence numbers become visible in the order they were assigned.
const appendLockKey int64 = 0x696e626f78

// Announcement is the NOTIFY payload. Listeners fetch the row itself by sequence.
type Announcement struct {
	UserID string `json:"userId"`
	Seq    int64  `json:"seq"`
}

// GormNotificationRepository implements ports.Notifier. Rows are only ever inserted.
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Notify appends n to the recipient's inbox and announces it on Channel. The announcement
// is delivered by PostgreSQL when the insert commits. A reader that has seen seq N never
// sees a row below N appear later, so a seq cursor can skip nothing.
func (r *GormNotificationRepository) Notify(ctx context.Context, n activity.Notification) error {
	dto := fromDomain(n)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", appendLockKey).Error; err != nil {
			return err
		}
		if err := tx.Create(&dto).Error; err != nil {
			return err
		}
		payload, err := json.Marshal(Announcement{UserID: dto.UserID.String(), Seq: dto.Seq})
		if err != nil {
			return err
		}
		return tx.Exec("SELECT pg_notify(?, ?)", Channel, string(payload)).Error
	})
	return pgerrs.Wrap("append notification", err)
}

// ListAfter returns up to limit notifications with a sequence greater than seq, oldest first.
func (r *GormNotificationRepository) ListAfter(ctx context.Context, seq int64, limit int) ([]activity.Notification, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("seq > ?", seq).
		Order("seq").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerrs.Wrap("list notifications", err)
	}

	out := make([]activity.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		out = append(out, n)
	}
	return out, nil
}

// LoadCursor returns the stored position of the named relay, or zero when it has never run.
func (r *GormNotificationRepository) LoadCursor(ctx context.Context, name string) (int64, error) {
	var cursor RelayCursorDTO
	result := r.db.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&cursor)
	if result.Error != nil {
		return 0, pgerrs.Wrap("load relay cursor", result.Error)
	}
	return cursor.Seq, nil
}

// SaveCursor moves the named relay forward. A lower seq than the stored one is ignored.
func (r *GormNotificationRepository) SaveCursor(ctx context.Context, name string, seq int64) error {
	cursor := RelayCursorDTO{Name: name, Seq: seq, UpdatedAt: time.Now().UTC()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Set{
			{Column: clause.Column{Name: "seq"}, Value: gorm.Expr("GREATEST(relay_cursors.seq, EXCLUDED.seq)")},
			{Column: clause.Column{Name: "updated_at"}, Value: gorm.Expr("EXCLUDED.updated_at")},
		},
	}).Create(&cursor).Error
	return pgerrs.Wrap("save relay cursor", err)
}

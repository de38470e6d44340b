package repository

import (
	"context"
	"time"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"gorm.io/gorm"
)

// AccessLogRepository append-only view log
type AccessLogRepository interface {
	Append(ctx context.Context, bulletinID int) error
	CountUpTo(ctx context.Context, maxID int) (map[int]int64, error)
	CountExisting(ctx context.Context) (map[int]int64, error)
	DeleteByBulletin(ctx context.Context, bulletinID int) error
}

type accessLogRepository struct {
	db *gorm.DB
}

// NewAccessLogRepository creates a new AccessLogRepository
func NewAccessLogRepository(db *gorm.DB) AccessLogRepository {
	return &accessLogRepository{db: db}
}

// Append records one view of the bulletin. The insert runs in autocommit
// mode, so the row is committed when Append returns.
func (r *accessLogRepository) Append(ctx context.Context, bulletinID int) error {
	entry := &domain.AccessLog{
		BulletinID: bulletinID,
		Access:     time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return common.NewStoreError("accesslog.append", err)
	}
	return nil
}

// CountUpTo returns bulletin id → number of access log rows for ids in
// 1..maxID, whether or not a bulletin with that id exists. Ids without rows
// are absent from the map.
func (r *accessLogRepository) CountUpTo(ctx context.Context, maxID int) (map[int]int64, error) {
	if maxID < 1 {
		return map[int]int64{}, nil
	}

	var rows []countRow
	err := r.db.WithContext(ctx).
		Model(&domain.AccessLog{}).
		Select("bulletin_id AS id, COUNT(*) AS cnt").
		Where("bulletin_id BETWEEN 1 AND ?", maxID).
		Group("bulletin_id").
		Scan(&rows).Error
	if err != nil {
		return nil, common.NewStoreError("accesslog.count_up_to", err)
	}
	return countsToMap(rows), nil
}

// CountExisting returns bulletin id → number of access log rows for the
// bulletins that currently exist. Rows of deleted bulletins are ignored.
func (r *accessLogRepository) CountExisting(ctx context.Context) (map[int]int64, error) {
	var rows []countRow
	err := r.db.WithContext(ctx).
		Table("accesslog AS a").
		Select("a.bulletin_id AS id, COUNT(*) AS cnt").
		Joins("JOIN bulletins AS b ON b.id = a.bulletin_id").
		Group("a.bulletin_id").
		Scan(&rows).Error
	if err != nil {
		return nil, common.NewStoreError("accesslog.count_existing", err)
	}
	return countsToMap(rows), nil
}

// DeleteByBulletin removes every access log row of the bulletin
func (r *accessLogRepository) DeleteByBulletin(ctx context.Context, bulletinID int) error {
	err := r.db.WithContext(ctx).
		Where("bulletin_id = ?", bulletinID).
		Delete(&domain.AccessLog{}).Error
	if err != nil {
		return common.NewStoreError("accesslog.delete_by_bulletin", err)
	}
	return nil
}

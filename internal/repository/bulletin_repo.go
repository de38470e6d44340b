package repository

import (
	"context"
	"time"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"gorm.io/gorm"
)

// BulletinRepository bulletin storage
type BulletinRepository interface {
	// Reads
	ListSummaries(ctx context.Context) ([]*domain.BulletinSummary, error)
	Count(ctx context.Context) (int64, error)
	ListIDs(ctx context.Context) ([]int, error)
	FindByID(ctx context.Context, id int) (*domain.Bulletin, error)
	FindTitles(ctx context.Context, ids []int) (map[int]string, error)

	// Writes
	Create(ctx context.Context, bulletin *domain.Bulletin) error
	Update(ctx context.Context, id int, title, body string) error
	Delete(ctx context.Context, id int) error
}

type bulletinRepository struct {
	db *gorm.DB
}

// NewBulletinRepository creates a new BulletinRepository
func NewBulletinRepository(db *gorm.DB) BulletinRepository {
	return &bulletinRepository{db: db}
}

// ListSummaries returns every bulletin, most recently modified first, joined
// with its author's nickname. Bulletins whose author row is gone keep an empty
// nickname.
func (r *bulletinRepository) ListSummaries(ctx context.Context) ([]*domain.BulletinSummary, error) {
	var summaries []*domain.BulletinSummary

	err := r.db.WithContext(ctx).
		Table("bulletins AS b").
		Select("b.id, b.user_id, b.title, b.modified, COALESCE(u.nickname, '') AS nickname").
		Joins("LEFT JOIN users AS u ON u.id = b.user_id").
		Order("b.modified DESC, b.id DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, common.NewStoreError("bulletins.list_summaries", err)
	}
	return summaries, nil
}

// Count returns the total number of bulletin rows
func (r *bulletinRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Bulletin{}).Count(&total).Error; err != nil {
		return 0, common.NewStoreError("bulletins.count", err)
	}
	return total, nil
}

// ListIDs returns the ids of all existing bulletins in ascending order
func (r *bulletinRepository) ListIDs(ctx context.Context) ([]int, error) {
	var ids []int
	err := r.db.WithContext(ctx).
		Model(&domain.Bulletin{}).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, common.NewStoreError("bulletins.list_ids", err)
	}
	return ids, nil
}

// FindByID returns common.ErrBulletinNotFound when no row matches
func (r *bulletinRepository) FindByID(ctx context.Context, id int) (*domain.Bulletin, error) {
	var bulletin domain.Bulletin
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bulletin).Error
	if err != nil {
		return nil, findError("bulletins.find_by_id", err, common.ErrBulletinNotFound)
	}
	return &bulletin, nil
}

// FindTitles returns id → title for the ids that exist
func (r *bulletinRepository) FindTitles(ctx context.Context, ids []int) (map[int]string, error) {
	titles := make(map[int]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	for _, chunk := range chunkIDs(ids) {
		var rows []struct {
			ID    int    `gorm:"column:id"`
			Title string `gorm:"column:title"`
		}
		err := r.db.WithContext(ctx).
			Model(&domain.Bulletin{}).
			Select("id, title").
			Where("id IN ?", chunk).
			Scan(&rows).Error
		if err != nil {
			return nil, common.NewStoreError("bulletins.find_titles", err)
		}

		for _, row := range rows {
			titles[row.ID] = row.Title
		}
	}
	return titles, nil
}

// Create inserts the bulletin; created and modified are set to now
func (r *bulletinRepository) Create(ctx context.Context, bulletin *domain.Bulletin) error {
	now := time.Now()
	bulletin.Created = now
	bulletin.Modified = now

	if err := r.db.WithContext(ctx).Create(bulletin).Error; err != nil {
		return common.NewStoreError("bulletins.create", err)
	}
	return nil
}

// Update rewrites title and body and bumps modified
func (r *bulletinRepository) Update(ctx context.Context, id int, title, body string) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Bulletin{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":    title,
			"body":     body,
			"modified": time.Now(),
		}).Error
	if err != nil {
		return common.NewStoreError("bulletins.update", err)
	}
	return nil
}

// Delete removes the bulletin row only; comments, stars and access logs are
// left to the caller
func (r *bulletinRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Bulletin{}).Error; err != nil {
		return common.NewStoreError("bulletins.delete", err)
	}
	return nil
}

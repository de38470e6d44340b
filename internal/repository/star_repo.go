package repository

import (
	"context"
	"time"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"gorm.io/gorm"
)

// StarRepository append-only star records for bulletins and comments
type StarRepository interface {
	AddBulletinStar(ctx context.Context, bulletinID int) error
	AddCommentStar(ctx context.Context, commentID int) error
	CountBulletinStars(ctx context.Context, bulletinID int) (int64, error)
	CountCommentStars(ctx context.Context, commentID int) (int64, error)
	CountCommentStarsByIDs(ctx context.Context, commentIDs []int) (map[int]int64, error)
}

type starRepository struct {
	db *gorm.DB
}

// NewStarRepository creates a new StarRepository
func NewStarRepository(db *gorm.DB) StarRepository {
	return &starRepository{db: db}
}

// AddBulletinStar appends one star for the bulletin
func (r *starRepository) AddBulletinStar(ctx context.Context, bulletinID int) error {
	star := &domain.BulletinStar{BulletinID: bulletinID, Access: time.Now()}
	if err := r.db.WithContext(ctx).Create(star).Error; err != nil {
		return common.NewStoreError("bulletins_star.add", err)
	}
	return nil
}

// AddCommentStar appends one star for the comment
func (r *starRepository) AddCommentStar(ctx context.Context, commentID int) error {
	star := &domain.CommentStar{CommentID: commentID, Access: time.Now()}
	if err := r.db.WithContext(ctx).Create(star).Error; err != nil {
		return common.NewStoreError("comments_star.add", err)
	}
	return nil
}

// CountBulletinStars counts the star rows of a bulletin
func (r *starRepository) CountBulletinStars(ctx context.Context, bulletinID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.BulletinStar{}).
		Where("bulletin_id = ?", bulletinID).
		Count(&count).Error
	if err != nil {
		return 0, common.NewStoreError("bulletins_star.count", err)
	}
	return count, nil
}

// CountCommentStars counts the star rows of a comment
func (r *starRepository) CountCommentStars(ctx context.Context, commentID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.CommentStar{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	if err != nil {
		return 0, common.NewStoreError("comments_star.count", err)
	}
	return count, nil
}

// CountCommentStarsByIDs returns comment id → star count, one grouped query
// per batch of ids.
// Comments without stars are absent from the map.
func (r *starRepository) CountCommentStarsByIDs(ctx context.Context, commentIDs []int) (map[int]int64, error) {
	if len(commentIDs) == 0 {
		return map[int]int64{}, nil
	}

	var rows []countRow
	for _, chunk := range chunkIDs(commentIDs) {
		var part []countRow
		err := r.db.WithContext(ctx).
			Model(&domain.CommentStar{}).
			Select("comment_id AS id, COUNT(*) AS cnt").
			Where("comment_id IN ?", chunk).
			Group("comment_id").
			Scan(&part).Error
		if err != nil {
			return nil, common.NewStoreError("comments_star.count_by_ids", err)
		}
		rows = append(rows, part...)
	}
	return countsToMap(rows), nil
}

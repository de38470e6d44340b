package repository

import (
	"context"
	"time"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"gorm.io/gorm"
)

type CommentRepository interface {
	// List comments of a bulletin with their authors, oldest first
	ListByBulletin(ctx context.Context, bulletinID int) ([]*domain.CommentWithAuthor, error)

	// Find comment by ID
	FindByID(ctx context.Context, id int) (*domain.Comment, error)

	// Create new comment
	Create(ctx context.Context, comment *domain.Comment) error

	// Update comment body
	Update(ctx context.Context, id int, body string) error

	// Delete comment
	Delete(ctx context.Context, id int) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByBulletin retrieves all comments of a bulletin ordered by created
func (r *commentRepository) ListByBulletin(ctx context.Context, bulletinID int) ([]*domain.CommentWithAuthor, error) {
	var comments []*domain.CommentWithAuthor

	err := r.db.WithContext(ctx).
		Table("comments AS c").
		Select("c.id, c.user_id, c.body, c.created, COALESCE(u.nickname, '') AS nickname, COALESCE(u.icon, '') AS icon").
		Joins("LEFT JOIN users AS u ON u.id = c.user_id").
		Where("c.bulletin_id = ?", bulletinID).
		Order("c.created ASC, c.id ASC").
		Scan(&comments).Error
	if err != nil {
		return nil, common.NewStoreError("comments.list_by_bulletin", err)
	}
	return comments, nil
}

// FindByID retrieves a comment by ID
func (r *commentRepository) FindByID(ctx context.Context, id int) (*domain.Comment, error) {
	var comment domain.Comment

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&comment).Error
	if err != nil {
		return nil, findError("comments.find_by_id", err, common.ErrCommentNotFound)
	}
	return &comment, nil
}

// Create inserts the comment; created and modified are set to now
func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	now := time.Now()
	comment.Created = now
	comment.Modified = now

	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return common.NewStoreError("comments.create", err)
	}
	return nil
}

// Update rewrites the body and bumps modified
func (r *commentRepository) Update(ctx context.Context, id int, body string) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"body":     body,
			"modified": time.Now(),
		}).Error
	if err != nil {
		return common.NewStoreError("comments.update", err)
	}
	return nil
}

// Delete removes the comment row; its stars are not touched
func (r *commentRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
		return common.NewStoreError("comments.delete", err)
	}
	return nil
}

package service

import (
	"context"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/bbapp/bulletin-backend/internal/repository"
	"github.com/bbapp/bulletin-backend/internal/validation"
)

type CommentService interface {
	Create(ctx context.Context, identity *domain.Identity, bulletinID int, req *domain.CommentRequest) (*domain.Comment, error)
	GetForEdit(ctx context.Context, identity *domain.Identity, id int) (*domain.Comment, error)
	Update(ctx context.Context, identity *domain.Identity, id int, req *domain.CommentRequest) error
	Delete(ctx context.Context, identity *domain.Identity, id int) error
}

type commentService struct {
	repo         repository.CommentRepository
	bulletinRepo repository.BulletinRepository
}

func NewCommentService(repo repository.CommentRepository, bulletinRepo repository.BulletinRepository) CommentService {
	return &commentService{repo: repo, bulletinRepo: bulletinRepo}
}

// Create adds a comment by identity to an existing bulletin
func (s *commentService) Create(ctx context.Context, identity *domain.Identity, bulletinID int, req *domain.CommentRequest) (*domain.Comment, error) {
	if identity == nil {
		return nil, common.ErrUnauthorized
	}
	if _, err := s.bulletinRepo.FindByID(ctx, bulletinID); err != nil {
		return nil, err
	}
	if err := validateComment(req); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		BulletinID: bulletinID,
		UserID:     identity.UserID,
		Body:       req.Body,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetForEdit returns the comment if identity owns it
func (s *commentService) GetForEdit(ctx context.Context, identity *domain.Identity, id int) (*domain.Comment, error) {
	return s.owned(ctx, identity, id)
}

// Update rewrites the body of an owned comment
func (s *commentService) Update(ctx context.Context, identity *domain.Identity, id int, req *domain.CommentRequest) error {
	if _, err := s.owned(ctx, identity, id); err != nil {
		return err
	}
	if err := validateComment(req); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, req.Body)
}

// Delete removes an owned comment
func (s *commentService) Delete(ctx context.Context, identity *domain.Identity, id int) error {
	if _, err := s.owned(ctx, identity, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *commentService) owned(ctx context.Context, identity *domain.Identity, id int) (*domain.Comment, error) {
	if identity == nil {
		return nil, common.ErrUnauthorized
	}

	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.Owns(comment.UserID) {
		return nil, common.ErrForbidden
	}
	return comment, nil
}

func validateComment(req *domain.CommentRequest) error {
	if req == nil {
		return common.InvalidInput("missing comment")
	}
	return validation.Check(validation.FieldComment, req.Body)
}

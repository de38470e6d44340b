package service

import (
	"context"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/bbapp/bulletin-backend/internal/repository"
	"github.com/bbapp/bulletin-backend/internal/validation"
)

// BulletinService author-side bulletin operations
type BulletinService interface {
	Create(ctx context.Context, identity *domain.Identity, req *domain.BulletinRequest) (*domain.Bulletin, error)
	GetForEdit(ctx context.Context, identity *domain.Identity, id int) (*domain.Bulletin, error)
	Update(ctx context.Context, identity *domain.Identity, id int, req *domain.BulletinRequest) error
	Delete(ctx context.Context, identity *domain.Identity, id int) error
}

type bulletinService struct {
	repo          repository.BulletinRepository
	accessLogRepo repository.AccessLogRepository
}

// NewBulletinService creates a new BulletinService
func NewBulletinService(repo repository.BulletinRepository, accessLogRepo repository.AccessLogRepository) BulletinService {
	return &bulletinService{repo: repo, accessLogRepo: accessLogRepo}
}

// Create stores a new bulletin owned by identity
func (s *bulletinService) Create(ctx context.Context, identity *domain.Identity, req *domain.BulletinRequest) (*domain.Bulletin, error) {
	if identity == nil {
		return nil, common.ErrUnauthorized
	}
	if err := validateBulletin(req); err != nil {
		return nil, err
	}

	bulletin := &domain.Bulletin{
		UserID: identity.UserID,
		Title:  req.Title,
		Body:   req.Body,
	}
	if err := s.repo.Create(ctx, bulletin); err != nil {
		return nil, err
	}
	return bulletin, nil
}

// GetForEdit returns the bulletin if identity owns it
func (s *bulletinService) GetForEdit(ctx context.Context, identity *domain.Identity, id int) (*domain.Bulletin, error) {
	return s.owned(ctx, identity, id)
}

// Update rewrites title and body of an owned bulletin
func (s *bulletinService) Update(ctx context.Context, identity *domain.Identity, id int, req *domain.BulletinRequest) error {
	if _, err := s.owned(ctx, identity, id); err != nil {
		return err
	}
	if err := validateBulletin(req); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, req.Title, req.Body)
}

// Delete removes an owned bulletin and then its access log. The two deletes
// are separate statements; comments and stars stay behind.
func (s *bulletinService) Delete(ctx context.Context, identity *domain.Identity, id int) error {
	if _, err := s.owned(ctx, identity, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.accessLogRepo.DeleteByBulletin(ctx, id)
}

func (s *bulletinService) owned(ctx context.Context, identity *domain.Identity, id int) (*domain.Bulletin, error) {
	if identity == nil {
		return nil, common.ErrUnauthorized
	}

	// Check if bulletin exists and belongs to the caller
	bulletin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.Owns(bulletin.UserID) {
		return nil, common.ErrForbidden
	}
	return bulletin, nil
}

func validateBulletin(req *domain.BulletinRequest) error {
	if req == nil {
		return common.InvalidInput("missing bulletin")
	}
	return validation.CheckAll(
		validation.Value{Field: validation.FieldTitle, Value: req.Title},
		validation.Value{Field: validation.FieldBody, Value: req.Body},
	)
}

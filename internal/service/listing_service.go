package service

import (
	"context"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/bbapp/bulletin-backend/internal/repository"
)

// ListingService assembles the paginated bulletin overview
type ListingService interface {
	AssembleListing(ctx context.Context, page int) ([]*domain.BulletinSummary, *common.Meta, error)
}

type listingService struct {
	repo     repository.BulletinRepository
	pageSize int
}

// NewListingService creates a new ListingService; pageSize < 1 selects the default
func NewListingService(repo repository.BulletinRepository, pageSize int) ListingService {
	if pageSize < 1 {
		pageSize = common.DefaultPageSize
	}
	return &listingService{repo: repo, pageSize: pageSize}
}

// AssembleListing returns one page of bulletins, most recently modified first.
// meta.Total is the number of bulletins before pagination.
func (s *listingService) AssembleListing(ctx context.Context, page int) ([]*domain.BulletinSummary, *common.Meta, error) {
	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, nil, err
	}

	total := int64(len(summaries))
	return common.Paginate(summaries, page, s.pageSize), common.NewMeta(page, s.pageSize, total), nil
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/bbapp/bulletin-backend/internal/repository"
)

// SearchService filters bulletins by title or by the caller's authorship
type SearchService interface {
	Search(ctx context.Context, query domain.SearchQuery, viewer *domain.Identity, page int) ([]*domain.BulletinSummary, *common.Meta, error)
}

type searchService struct {
	bulletinRepo repository.BulletinRepository
	userRepo     repository.UserRepository
	pageSize     int
}

// NewSearchService creates a new SearchService; pageSize < 1 selects the default
func NewSearchService(bulletinRepo repository.BulletinRepository, userRepo repository.UserRepository, pageSize int) SearchService {
	if pageSize < 1 {
		pageSize = common.DefaultPageSize
	}
	return &searchService{bulletinRepo: bulletinRepo, userRepo: userRepo, pageSize: pageSize}
}

// Search keeps the listing order and applies the first matching rule:
//   - query.Title present: title contains it (case-sensitive, unanchored)
//   - query.Owner present and equal to the viewer's username: authored by that user
//
// With neither rule applicable the result is empty. meta.Total counts matches.
func (s *searchService) Search(ctx context.Context, query domain.SearchQuery, viewer *domain.Identity, page int) ([]*domain.BulletinSummary, *common.Meta, error) {
	match, err := s.matcher(ctx, query, viewer)
	if err != nil {
		return nil, nil, err
	}
	if match == nil {
		return []*domain.BulletinSummary{}, common.NewMeta(page, s.pageSize, 0), nil
	}

	summaries, err := s.bulletinRepo.ListSummaries(ctx)
	if err != nil {
		return nil, nil, err
	}

	matches := make([]*domain.BulletinSummary, 0, len(summaries))
	for _, b := range summaries {
		if match(b) {
			matches = append(matches, b)
		}
	}

	total := int64(len(matches))
	return common.Paginate(matches, page, s.pageSize), common.NewMeta(page, s.pageSize, total), nil
}

// matcher returns nil when no bulletin can match
func (s *searchService) matcher(ctx context.Context, query domain.SearchQuery, viewer *domain.Identity) (func(*domain.BulletinSummary) bool, error) {
	if query.Title != nil {
		needle := *query.Title
		return func(b *domain.BulletinSummary) bool {
			return strings.Contains(b.Title, needle)
		}, nil
	}

	if query.Owner == nil || viewer == nil || *query.Owner != viewer.Username {
		return nil, nil
	}

	owner, err := s.userRepo.FindByUsername(ctx, *query.Owner)
	if errors.Is(err, common.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return func(b *domain.BulletinSummary) bool {
		return b.UserID == owner.ID
	}, nil
}

package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/bbapp/bulletin-backend/internal/repository"
	"github.com/bbapp/bulletin-backend/pkg/metrics"
)

// StarService appends stars and reports current counts
type StarService interface {
	AddStar(ctx context.Context, target domain.StarTarget) (int64, error)
}

type starService struct {
	repo repository.StarRepository
}

// NewStarService creates a new StarService
func NewStarService(repo repository.StarRepository) StarService {
	return &starService{repo: repo}
}

// AddStar appends one star to the target and returns the target's count after
// the insert. Stars are never deduplicated.
func (s *starService) AddStar(ctx context.Context, target domain.StarTarget) (int64, error) {
	if target.ID < 1 {
		return 0, common.InvalidInput("star target id must be positive, got %d", target.ID)
	}

	switch target.Kind {
	case domain.StarBulletin:
		if err := s.repo.AddBulletinStar(ctx, target.ID); err != nil {
			return 0, err
		}
		metrics.StarAdded(string(target.Kind))
		return s.repo.CountBulletinStars(ctx, target.ID)
	case domain.StarComment:
		if err := s.repo.AddCommentStar(ctx, target.ID); err != nil {
			return 0, err
		}
		metrics.StarAdded(string(target.Kind))
		return s.repo.CountCommentStars(ctx, target.ID)
	default:
		return 0, common.InvalidInput("unknown star target %q", target.Kind)
	}
}

// ParseStarTarget converts a star request into a target. Exactly one of
// bulletin_id and comment_id must be present and hold a positive integer.
func ParseStarTarget(req *domain.StarRequest) (domain.StarTarget, error) {
	if req == nil {
		return domain.StarTarget{}, common.InvalidInput("missing star target")
	}

	switch {
	case req.BulletinID != nil && req.CommentID != nil:
		return domain.StarTarget{}, common.InvalidInput("bulletin_id and comment_id are mutually exclusive")
	case req.BulletinID != nil:
		id, err := parseID(*req.BulletinID)
		if err != nil {
			return domain.StarTarget{}, err
		}
		return domain.StarTarget{Kind: domain.StarBulletin, ID: id}, nil
	case req.CommentID != nil:
		id, err := parseID(*req.CommentID)
		if err != nil {
			return domain.StarTarget{}, err
		}
		return domain.StarTarget{Kind: domain.StarComment, ID: id}, nil
	default:
		return domain.StarTarget{}, common.InvalidInput("one of bulletin_id or comment_id is required")
	}
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 1 {
		return 0, common.InvalidInput("malformed id %q", raw)
	}
	return id, nil
}

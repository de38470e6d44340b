package service

import (
	"context"
	"errors"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/bbapp/bulletin-backend/internal/repository"
	"github.com/bbapp/bulletin-backend/pkg/metrics"
)

// ThreadService assembles a bulletin's detail page and records the view
type ThreadService interface {
	AssembleThread(ctx context.Context, bulletinID int, viewer *domain.Identity) (*domain.ThreadView, error)
}

type threadService struct {
	bulletinRepo  repository.BulletinRepository
	userRepo      repository.UserRepository
	commentRepo   repository.CommentRepository
	starRepo      repository.StarRepository
	accessLogRepo repository.AccessLogRepository
}

// NewThreadService creates a new ThreadService
func NewThreadService(
	bulletinRepo repository.BulletinRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	starRepo repository.StarRepository,
	accessLogRepo repository.AccessLogRepository,
) ThreadService {
	return &threadService{
		bulletinRepo:  bulletinRepo,
		userRepo:      userRepo,
		commentRepo:   commentRepo,
		starRepo:      starRepo,
		accessLogRepo: accessLogRepo,
	}
}

// AssembleThread loads the bulletin, its author, its comments (oldest first)
// with their authors and star counts, and the bulletin's star count. Every
// successful call appends exactly one access log entry; viewer may be nil and
// does not affect the view count.
func (s *threadService) AssembleThread(ctx context.Context, bulletinID int, viewer *domain.Identity) (*domain.ThreadView, error) {
	bulletin, err := s.bulletinRepo.FindByID(ctx, bulletinID)
	if err != nil {
		return nil, err
	}

	author, err := s.authorProfile(ctx, bulletin.UserID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByBulletin(ctx, bulletinID)
	if err != nil {
		return nil, err
	}

	commentIDs := make([]int, len(comments))
	for i, c := range comments {
		commentIDs[i] = c.ID
	}
	commentStars, err := s.starRepo.CountCommentStarsByIDs(ctx, commentIDs)
	if err != nil {
		return nil, err
	}

	threadComments := make([]*domain.ThreadComment, len(comments))
	for i, c := range comments {
		threadComments[i] = &domain.ThreadComment{
			ID: c.ID,
			Author: domain.AuthorProfile{
				UserID:   c.UserID,
				Nickname: c.Nickname,
				Icon:     c.Icon,
			},
			Body:      c.Body,
			Created:   c.Created,
			StarCount: commentStars[c.ID],
			Editable:  viewer.Owns(c.UserID),
		}
	}

	starCount, err := s.starRepo.CountBulletinStars(ctx, bulletinID)
	if err != nil {
		return nil, err
	}

	if err := s.accessLogRepo.Append(ctx, bulletinID); err != nil {
		return nil, err
	}
	metrics.ViewRecorded()

	return &domain.ThreadView{
		Bulletin:  bulletin,
		Author:    author,
		StarCount: starCount,
		Editable:  viewer.Owns(bulletin.UserID),
		Comments:  threadComments,
	}, nil
}

// authorProfile tolerates a missing author row and returns an empty profile
func (s *threadService) authorProfile(ctx context.Context, userID int) (domain.AuthorProfile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, common.ErrUserNotFound) {
		return domain.AuthorProfile{UserID: userID}, nil
	}
	if err != nil {
		return domain.AuthorProfile{}, err
	}
	return user.Profile(), nil
}

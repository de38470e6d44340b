package service

import (
	"context"
	"sort"
	"time"

	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/bbapp/bulletin-backend/internal/repository"
	"github.com/bbapp/bulletin-backend/pkg/metrics"
)

// DefaultRankingLimit is the number of entries in the most-viewed ranking
const DefaultRankingLimit = 10

// RankingStrategy selects which bulletin ids take part in the ranking
type RankingStrategy string

const (
	// RankingDense walks ids 1..COUNT(bulletins). Once a bulletin has been
	// deleted this visits ids with no row and skips the highest existing ids.
	RankingDense RankingStrategy = "dense"
	// RankingExisting walks the ids of bulletins that currently exist.
	RankingExisting RankingStrategy = "existing"
)

// RankingService computes the most-viewed bulletins from the access log
type RankingService interface {
	TopBulletins(ctx context.Context, limit int) ([]*domain.RankingEntry, error)
}

type rankingService struct {
	bulletinRepo  repository.BulletinRepository
	accessLogRepo repository.AccessLogRepository
	strategy      RankingStrategy
}

// NewRankingService creates a new RankingService; unknown strategies fall back to RankingDense
func NewRankingService(bulletinRepo repository.BulletinRepository, accessLogRepo repository.AccessLogRepository, strategy RankingStrategy) RankingService {
	if strategy != RankingExisting {
		strategy = RankingDense
	}
	return &rankingService{
		bulletinRepo:  bulletinRepo,
		accessLogRepo: accessLogRepo,
		strategy:      strategy,
	}
}

// TopBulletins returns up to limit entries ordered by access count descending.
// Equal counts keep ascending id order. Bulletins that were never viewed are
// still eligible with a count of 0.
func (s *rankingService) TopBulletins(ctx context.Context, limit int) ([]*domain.RankingEntry, error) {
	start := time.Now()
	defer func() { metrics.ObserveRanking(time.Since(start).Seconds()) }()

	if limit < 1 {
		limit = DefaultRankingLimit
	}

	ids, counts, err := s.candidates(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.RankingEntry, len(ids))
	for i, id := range ids {
		entries[i] = &domain.RankingEntry{BulletinID: id, AccessCount: counts[id]}
	}

	// ids are ascending, so a stable sort keeps ascending id order within ties
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AccessCount > entries[j].AccessCount
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}

	top := make([]int, len(entries))
	for i, e := range entries {
		top[i] = e.BulletinID
	}
	titles, err := s.bulletinRepo.FindTitles(ctx, top)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		e.Title = titles[e.BulletinID]
	}

	return entries, nil
}

// candidates returns the ascending ids taking part in the ranking and their
// view counts. Counts are grouped in the store without binding one variable
// per bulletin.
func (s *rankingService) candidates(ctx context.Context) ([]int, map[int]int64, error) {
	if s.strategy == RankingExisting {
		ids, err := s.bulletinRepo.ListIDs(ctx)
		if err != nil {
			return nil, nil, err
		}
		counts, err := s.accessLogRepo.CountExisting(ctx)
		if err != nil {
			return nil, nil, err
		}
		return ids, counts, nil
	}

	total, err := s.bulletinRepo.Count(ctx)
	if err != nil {
		return nil, nil, err
	}
	counts, err := s.accessLogRepo.CountUpTo(ctx, int(total))
	if err != nil {
		return nil, nil, err
	}
	ids := make([]int, total)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids, counts, nil
}

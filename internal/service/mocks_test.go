package service

import (
	"context"

	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock BulletinRepository ---

type mockBulletinRepo struct {
	mock.Mock
}

func (m *mockBulletinRepo) ListSummaries(ctx context.Context) ([]*domain.BulletinSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BulletinSummary), args.Error(1)
}

func (m *mockBulletinRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBulletinRepo) ListIDs(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *mockBulletinRepo) FindByID(ctx context.Context, id int) (*domain.Bulletin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bulletin), args.Error(1)
}

func (m *mockBulletinRepo) FindTitles(ctx context.Context, ids []int) (map[int]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]string), args.Error(1)
}

func (m *mockBulletinRepo) Create(ctx context.Context, bulletin *domain.Bulletin) error {
	return m.Called(ctx, bulletin).Error(0)
}

func (m *mockBulletinRepo) Update(ctx context.Context, id int, title, body string) error {
	return m.Called(ctx, id, title, body).Error(0)
}

func (m *mockBulletinRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock CommentRepository ---

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) ListByBulletin(ctx context.Context, bulletinID int) ([]*domain.CommentWithAuthor, error) {
	args := m.Called(ctx, bulletinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CommentWithAuthor), args.Error(1)
}

func (m *mockCommentRepo) FindByID(ctx context.Context, id int) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *mockCommentRepo) Update(ctx context.Context, id int, body string) error {
	return m.Called(ctx, id, body).Error(0)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock StarRepository ---

type mockStarRepo struct {
	mock.Mock
}

func (m *mockStarRepo) AddBulletinStar(ctx context.Context, bulletinID int) error {
	return m.Called(ctx, bulletinID).Error(0)
}

func (m *mockStarRepo) AddCommentStar(ctx context.Context, commentID int) error {
	return m.Called(ctx, commentID).Error(0)
}

func (m *mockStarRepo) CountBulletinStars(ctx context.Context, bulletinID int) (int64, error) {
	args := m.Called(ctx, bulletinID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStarRepo) CountCommentStars(ctx context.Context, commentID int) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStarRepo) CountCommentStarsByIDs(ctx context.Context, commentIDs []int) (map[int]int64, error) {
	args := m.Called(ctx, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int64), args.Error(1)
}

// --- Mock AccessLogRepository ---

type mockAccessLogRepo struct {
	mock.Mock
}

func (m *mockAccessLogRepo) Append(ctx context.Context, bulletinID int) error {
	return m.Called(ctx, bulletinID).Error(0)
}

func (m *mockAccessLogRepo) CountUpTo(ctx context.Context, maxID int) (map[int]int64, error) {
	args := m.Called(ctx, maxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int64), args.Error(1)
}

func (m *mockAccessLogRepo) CountExisting(ctx context.Context) (map[int]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int64), args.Error(1)
}

func (m *mockAccessLogRepo) DeleteByBulletin(ctx context.Context, bulletinID int) error {
	return m.Called(ctx, bulletinID).Error(0)
}

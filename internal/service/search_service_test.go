package service

import (
	"context"
	"testing"
	"time"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func searchCorpus() []*domain.BulletinSummary {
	now := time.Date(2019, 10, 1, 12, 0, 0, 0, time.UTC)
	return []*domain.BulletinSummary{
		{ID: 4, UserID: 2, Title: "Go tips", Nickname: "bob", Modified: now.Add(4 * time.Minute)},
		{ID: 3, UserID: 1, Title: "golang meetup", Nickname: "alice", Modified: now.Add(3 * time.Minute)},
		{ID: 2, UserID: 1, Title: "lunch", Nickname: "alice", Modified: now.Add(2 * time.Minute)},
		{ID: 1, UserID: 2, Title: "go away", Nickname: "bob", Modified: now.Add(time.Minute)},
	}
}

func summaryIDs(items []*domain.BulletinSummary) []int {
	ids := make([]int, len(items))
	for i, b := range items {
		ids[i] = b.ID
	}
	return ids
}

func TestSearch_ByTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []int
	}{
		{"case sensitive", "go", []int{3, 1}},
		{"upper case", "Go", []int{4}},
		{"infix", "unc", []int{2}},
		{"empty matches all", "", []int{4, 3, 2, 1}},
		{"no match", "rust", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bulletins := new(mockBulletinRepo)
			users := new(mockUserRepo)
			svc := NewSearchService(bulletins, users, 10)
			bulletins.On("ListSummaries", mock.Anything).Return(searchCorpus(), nil)

			results, meta, err := svc.Search(context.Background(), domain.SearchQuery{Title: strPtr(tt.title)}, nil, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, summaryIDs(results))
			assert.Equal(t, int64(len(tt.want)), meta.Total)
		})
	}
}

func TestSearch_TitleTakesPrecedence(t *testing.T) {
	bulletins := new(mockBulletinRepo)
	users := new(mockUserRepo)
	svc := NewSearchService(bulletins, users, 10)
	bulletins.On("ListSummaries", mock.Anything).Return(searchCorpus(), nil)

	query := domain.SearchQuery{Title: strPtr("lunch"), Owner: strPtr("bob")}
	results, _, err := svc.Search(context.Background(), query, &domain.Identity{UserID: 2, Username: "bob"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, summaryIDs(results))
	users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestSearch_OwnBulletins(t *testing.T) {
	bulletins := new(mockBulletinRepo)
	users := new(mockUserRepo)
	svc := NewSearchService(bulletins, users, 10)
	bulletins.On("ListSummaries", mock.Anything).Return(searchCorpus(), nil)
	users.On("FindByUsername", mock.Anything, "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)

	viewer := &domain.Identity{UserID: 1, Username: "alice"}
	results, meta, err := svc.Search(context.Background(), domain.SearchQuery{Owner: strPtr("alice")}, viewer, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, summaryIDs(results))
	assert.Equal(t, int64(2), meta.Total)
}

func TestSearch_OwnerNotViewer(t *testing.T) {
	tests := []struct {
		name   string
		viewer *domain.Identity
	}{
		{"anonymous", nil},
		{"someone else", &domain.Identity{UserID: 2, Username: "bob"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bulletins := new(mockBulletinRepo)
			users := new(mockUserRepo)
			svc := NewSearchService(bulletins, users, 10)

			results, meta, err := svc.Search(context.Background(), domain.SearchQuery{Owner: strPtr("alice")}, tt.viewer, 1)
			require.NoError(t, err)
			assert.Empty(t, results)
			assert.Equal(t, int64(0), meta.Total)
			bulletins.AssertNotCalled(t, "ListSummaries", mock.Anything)
		})
	}
}

func TestSearch_OwnerUnknown(t *testing.T) {
	bulletins := new(mockBulletinRepo)
	users := new(mockUserRepo)
	svc := NewSearchService(bulletins, users, 10)
	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, common.ErrUserNotFound)

	viewer := &domain.Identity{UserID: 9, Username: "ghost"}
	results, _, err := svc.Search(context.Background(), domain.SearchQuery{Owner: strPtr("ghost")}, viewer, 1)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_NoCriteria(t *testing.T) {
	bulletins := new(mockBulletinRepo)
	users := new(mockUserRepo)
	svc := NewSearchService(bulletins, users, 10)

	results, meta, err := svc.Search(context.Background(), domain.SearchQuery{}, &domain.Identity{UserID: 1, Username: "alice"}, 1)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
	assert.Equal(t, int64(0), meta.Total)
}

func TestSearch_Paginates(t *testing.T) {
	bulletins := new(mockBulletinRepo)
	users := new(mockUserRepo)
	svc := NewSearchService(bulletins, users, 2)
	bulletins.On("ListSummaries", mock.Anything).Return(searchCorpus(), nil)

	results, meta, err := svc.Search(context.Background(), domain.SearchQuery{Title: strPtr("")}, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, summaryIDs(results))
	assert.Equal(t, int64(4), meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

package repository_test

import (
	"context"
	"testing"

	"github.com/bbapp/bulletin-backend/internal/repository"
	"github.com/bbapp/bulletin-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLogRepository_AppendAndCountUpTo(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewAccessLogRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, 1))
	require.NoError(t, repo.Append(ctx, 1))
	require.NoError(t, repo.Append(ctx, 3))
	require.NoError(t, repo.Append(ctx, 42))

	// rows are counted by id range whether or not the bulletin exists
	counts, err := repo.CountUpTo(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{1: 2, 3: 1}, counts)

	counts, err = repo.CountUpTo(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{1: 2, 3: 1, 42: 1}, counts)

	empty, err := repo.CountUpTo(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAccessLogRepository_CountExisting(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewAccessLogRepository(db)
	ctx := context.Background()

	alice := testutil.InsertUser(t, db, "alice", "Alice")
	b1 := testutil.InsertBulletin(t, db, alice.ID, "first", 0)
	b2 := testutil.InsertBulletin(t, db, alice.ID, "second", 1)
	testutil.InsertViews(t, db, b1.ID, 2)
	testutil.InsertViews(t, db, 99, 5)

	counts, err := repo.CountExisting(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{b1.ID: 2}, counts)
	assert.NotContains(t, counts, b2.ID)
}

func TestAccessLogRepository_DeleteByBulletin(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewAccessLogRepository(db)
	ctx := context.Background()

	testutil.InsertViews(t, db, 7, 3)
	testutil.InsertViews(t, db, 8, 2)

	require.NoError(t, repo.DeleteByBulletin(ctx, 7))

	counts, err := repo.CountUpTo(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{8: 2}, counts)
}

// More bulletins than SQLite or MySQL allow bind variables in one statement
func TestAccessLogRepository_CountsBeyondBindVariableLimit(t *testing.T) {
	db := testutil.NewDB(t)
	logs := repository.NewAccessLogRepository(db)
	bulletins := repository.NewBulletinRepository(db)
	ctx := context.Background()

	const n = 70000
	alice := testutil.InsertUser(t, db, "alice", "Alice")
	testutil.InsertBulletins(t, db, alice.ID, n)
	testutil.InsertViews(t, db, n-1, 3)
	testutil.InsertViews(t, db, 2, 1)

	counts, err := logs.CountUpTo(ctx, n)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{2: 1, n - 1: 3}, counts)

	counts, err = logs.CountExisting(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{2: 1, n - 1: 3}, counts)

	ids, err := bulletins.ListIDs(ctx)
	require.NoError(t, err)
	require.Len(t, ids, n)

	titles, err := bulletins.FindTitles(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, titles, n)
	assert.Equal(t, "bulletin 69999", titles[n-1])
}

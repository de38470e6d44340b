package repository_test

import (
	"context"
	"testing"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/bbapp/bulletin-backend/internal/repository"
	"github.com/bbapp/bulletin-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListByBulletin(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewCommentRepository(db)
	ctx := context.Background()

	alice := testutil.InsertUser(t, db, "alice", "Alice")
	bob := testutil.InsertUser(t, db, "bob", "Bob")
	b := testutil.InsertBulletin(t, db, alice.ID, "thread", 0)
	other := testutil.InsertBulletin(t, db, alice.ID, "other", 0)

	testutil.InsertComment(t, db, b.ID, bob.ID, "second", 20)
	testutil.InsertComment(t, db, b.ID, alice.ID, "first", 10)
	testutil.InsertComment(t, db, other.ID, bob.ID, "elsewhere", 5)
	testutil.InsertComment(t, db, b.ID, bob.ID, "third", 30)

	comments, err := repo.ListByBulletin(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	assert.Equal(t, "first", comments[0].Body)
	assert.Equal(t, "Alice", comments[0].Nickname)
	assert.Equal(t, "alice.png", comments[0].Icon)
	assert.Equal(t, "second", comments[1].Body)
	assert.Equal(t, "Bob", comments[1].Nickname)
	assert.Equal(t, "third", comments[2].Body)
}

func TestCommentRepository_CRUD(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewCommentRepository(db)
	ctx := context.Background()

	comment := &domain.Comment{BulletinID: 1, UserID: 2, Body: "hi"}
	require.NoError(t, repo.Create(ctx, comment))
	assert.NotZero(t, comment.ID)

	require.NoError(t, repo.Update(ctx, comment.ID, "edited"))
	found, err := repo.FindByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", found.Body)
	assert.Equal(t, 2, found.UserID)

	require.NoError(t, repo.Delete(ctx, comment.ID))
	_, err = repo.FindByID(ctx, comment.ID)
	assert.ErrorIs(t, err, common.ErrCommentNotFound)
}

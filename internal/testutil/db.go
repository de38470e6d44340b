// Package testutil provides fixtures shared by repository, service and
// handler tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/bbapp/bulletin-backend/internal/domain"
	"github.com/bbapp/bulletin-backend/internal/migration"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens an in-memory SQLite database with the full schema.
// A single connection keeps every statement on the same in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Run(db))
	return db
}

// BaseTime is the reference timestamp fixtures are built from
var BaseTime = time.Date(2019, 10, 1, 12, 0, 0, 0, time.UTC)

// InsertUser inserts a user row
func InsertUser(t *testing.T, db *gorm.DB, username, nickname string) *domain.User {
	t.Helper()
	user := &domain.User{
		Username: username,
		Password: "x",
		Nickname: nickname,
		Icon:     username + ".png",
		Created:  BaseTime,
		Modified: BaseTime,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// InsertBulletin inserts a bulletin whose modified time is BaseTime + minutes
func InsertBulletin(t *testing.T, db *gorm.DB, userID int, title string, minutes int) *domain.Bulletin {
	t.Helper()
	ts := BaseTime.Add(time.Duration(minutes) * time.Minute)
	bulletin := &domain.Bulletin{
		UserID:   userID,
		Title:    title,
		Body:     title + " body",
		Created:  ts,
		Modified: ts,
	}
	require.NoError(t, db.Create(bulletin).Error)
	return bulletin
}

// InsertBulletins bulk inserts n bulletins titled "bulletin <i>", ids 1..n on
// an empty table
func InsertBulletins(t *testing.T, db *gorm.DB, userID, n int) {
	t.Helper()
	bulletins := make([]*domain.Bulletin, n)
	for i := range bulletins {
		title := fmt.Sprintf("bulletin %d", i+1)
		bulletins[i] = &domain.Bulletin{
			UserID:   userID,
			Title:    title,
			Body:     title + " body",
			Created:  BaseTime,
			Modified: BaseTime,
		}
	}
	require.NoError(t, db.CreateInBatches(bulletins, 500).Error)
}

// InsertComment inserts a comment created at BaseTime + minutes
func InsertComment(t *testing.T, db *gorm.DB, bulletinID, userID int, body string, minutes int) *domain.Comment {
	t.Helper()
	ts := BaseTime.Add(time.Duration(minutes) * time.Minute)
	comment := &domain.Comment{
		BulletinID: bulletinID,
		UserID:     userID,
		Body:       body,
		Created:    ts,
		Modified:   ts,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

// InsertViews appends n access log rows for the bulletin
func InsertViews(t *testing.T, db *gorm.DB, bulletinID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&domain.AccessLog{BulletinID: bulletinID, Access: BaseTime}).Error)
	}
}

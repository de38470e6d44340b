// Package migration creates the board schema and checks its integrity.
package migration

import (
	"fmt"

	"github.com/bbapp/bulletin-backend/internal/repository"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for every board table. Existing tables and rows
// are left in place.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Tables lists the board tables in creation order
func Tables(db *gorm.DB) ([]string, error) {
	var names []string
	for _, model := range repository.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model: %w", err)
		}
		names = append(names, stmt.Schema.Table)
	}
	return names, nil
}

// Report counts rows left behind by deletes. Bulletin deletes remove the
// access log but keep comments and stars, so non-zero orphan counts are
// expected on a live board.
type Report struct {
	Rows                 map[string]int64
	OrphanComments       int64
	OrphanAccessLogs     int64
	OrphanBulletinStars  int64
	OrphanCommentStars   int64
	BulletinsWithoutUser int64
}

// Verify collects row and orphan counts
func Verify(db *gorm.DB) (*Report, error) {
	tables, err := Tables(db)
	if err != nil {
		return nil, err
	}

	report := &Report{Rows: make(map[string]int64, len(tables))}
	for _, table := range tables {
		var n int64
		if err := db.Table(table).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		report.Rows[table] = n
	}

	orphans := []struct {
		dest  *int64
		query string
	}{
		{&report.OrphanComments, "SELECT COUNT(*) FROM comments c LEFT JOIN bulletins b ON b.id = c.bulletin_id WHERE b.id IS NULL"},
		{&report.OrphanAccessLogs, "SELECT COUNT(*) FROM accesslog a LEFT JOIN bulletins b ON b.id = a.bulletin_id WHERE b.id IS NULL"},
		{&report.OrphanBulletinStars, "SELECT COUNT(*) FROM bulletins_star s LEFT JOIN bulletins b ON b.id = s.bulletin_id WHERE b.id IS NULL"},
		{&report.OrphanCommentStars, "SELECT COUNT(*) FROM comments_star s LEFT JOIN comments c ON c.id = s.comment_id WHERE c.id IS NULL"},
		{&report.BulletinsWithoutUser, "SELECT COUNT(*) FROM bulletins b LEFT JOIN users u ON u.id = b.user_id WHERE u.id IS NULL"},
	}
	for _, o := range orphans {
		if err := db.Raw(o.query).Scan(o.dest).Error; err != nil {
			return nil, fmt.Errorf("verify: %w", err)
		}
	}
	return report, nil
}

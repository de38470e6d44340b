package repository

import (
	"errors"

	"github.com/bbapp/bulletin-backend/internal/common"
	"github.com/bbapp/bulletin-backend/internal/domain"
	"gorm.io/gorm"
)

// Models lists every table of the content store (used by tests and tooling
// that needs to create the schema on an empty database)
func Models() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.Bulletin{},
		&domain.Comment{},
		&domain.AccessLog{},
		&domain.BulletinStar{},
		&domain.CommentStar{},
	}
}

// findError maps a single-row lookup failure onto the store error taxonomy
func findError(op string, err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return common.NewStoreError(op, err)
}

// countRow is the scan target of grouped COUNT(*) queries
type countRow struct {
	ID    int   `gorm:"column:id"`
	Count int64 `gorm:"column:cnt"`
}

func countsToMap(rows []countRow) map[int]int64 {
	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts
}

// maxIDsPerQuery bounds the bind variables of one IN list. SQLite and MySQL
// prepared statements both cap placeholders per statement.
const maxIDsPerQuery = 1000

// chunkIDs splits ids into slices of at most maxIDsPerQuery
func chunkIDs(ids []int) [][]int {
	chunks := make([][]int, 0, (len(ids)+maxIDsPerQuery-1)/maxIDsPerQuery)
	for len(ids) > maxIDsPerQuery {
		chunks = append(chunks, ids[:maxIDsPerQuery])
		ids = ids[maxIDsPerQuery:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}

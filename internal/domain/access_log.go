package domain

import "time"

// AccessLog represents the accesslog table, one row per bulletin view
type AccessLog struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement"`
	BulletinID int       `gorm:"column:bulletin_id;index"`
	Access     time.Time `gorm:"column:access"`
}

// TableName returns the table name for GORM
func (AccessLog) TableName() string {
	return "accesslog"
}

// RankingEntry is one row of the most-viewed ranking
type RankingEntry struct {
	BulletinID  int    `json:"bulletin_id"`
	Title       string `json:"title"`
	AccessCount int64  `json:"count"`
}

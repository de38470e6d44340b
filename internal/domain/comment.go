package domain

import "time"

// Comment represents the comments table
type Comment struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BulletinID int       `gorm:"column:bulletin_id;index" json:"bulletin_id"`
	UserID     int       `gorm:"column:user_id" json:"user_id"`
	Body       string    `gorm:"column:body;size:255" json:"body"`
	Created    time.Time `gorm:"column:created" json:"created"`
	Modified   time.Time `gorm:"column:modified" json:"modified"`
}

// TableName returns the table name for GORM
func (Comment) TableName() string {
	return "comments"
}

// CommentWithAuthor is a comment joined with its author's profile
type CommentWithAuthor struct {
	ID       int       `gorm:"column:id"`
	UserID   int       `gorm:"column:user_id"`
	Body     string    `gorm:"column:body"`
	Created  time.Time `gorm:"column:created"`
	Nickname string    `gorm:"column:nickname"`
	Icon     string    `gorm:"column:icon"`
}

// CommentRequest is the body of create/update comment requests
type CommentRequest struct {
	Body string `json:"body" form:"body"`
}

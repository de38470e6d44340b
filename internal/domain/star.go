package domain

import "time"

// BulletinStar represents the bulletins_star table
type BulletinStar struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement"`
	BulletinID int       `gorm:"column:bulletin_id;index"`
	Access     time.Time `gorm:"column:access"`
}

// TableName returns the table name for GORM
func (BulletinStar) TableName() string {
	return "bulletins_star"
}

// CommentStar represents the comments_star table
type CommentStar struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	CommentID int       `gorm:"column:comment_id;index"`
	Access    time.Time `gorm:"column:access"`
}

// TableName returns the table name for GORM
func (CommentStar) TableName() string {
	return "comments_star"
}

// StarKind selects what a star is attached to
type StarKind string

const (
	StarBulletin StarKind = "bulletin"
	StarComment  StarKind = "comment"
)

// StarTarget identifies exactly one bulletin or comment
type StarTarget struct {
	Kind StarKind
	ID   int
}

// StarRequest is the body of POST /star; exactly one field must be set.
// Values are kept as strings so malformed ids are reported as invalid input.
type StarRequest struct {
	BulletinID *string `json:"bulletin_id" form:"bulletin_id"`
	CommentID  *string `json:"comment_id" form:"comment_id"`
}

// StarResponse reports the star count after an insert
type StarResponse struct {
	Output int64 `json:"output"`
}

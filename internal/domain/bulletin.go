package domain

import "time"

// Bulletin represents the bulletins table
type Bulletin struct {
	ID       int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID   int       `gorm:"column:user_id;index" json:"user_id"`
	Title    string    `gorm:"column:title" json:"title"`
	Body     string    `gorm:"column:body;size:255" json:"body"`
	Created  time.Time `gorm:"column:created" json:"created"`
	Modified time.Time `gorm:"column:modified;index" json:"modified"`
}

// TableName returns the table name for GORM
func (Bulletin) TableName() string {
	return "bulletins"
}

// BulletinSummary is one row of the listing and search pages
type BulletinSummary struct {
	ID       int       `gorm:"column:id" json:"id"`
	UserID   int       `gorm:"column:user_id" json:"-"`
	Title    string    `gorm:"column:title" json:"title"`
	Nickname string    `gorm:"column:nickname" json:"nickname"`
	Modified time.Time `gorm:"column:modified" json:"modified"`
}

// BulletinRequest is the body of create/update bulletin requests
type BulletinRequest struct {
	Title string `json:"title" form:"title"`
	Body  string `json:"body" form:"body"`
}

// ListingResponse is the overview page: a page of bulletins plus the ranking
type ListingResponse struct {
	Bulletins []*BulletinSummary `json:"bulletins"`
	Ranking   []*RankingEntry    `json:"ranking"`
}

// SearchQuery holds the optional search criteria. A nil field is absent;
// a non-nil empty Title is present and matches every title.
type SearchQuery struct {
	Title *string
	Owner *string
}

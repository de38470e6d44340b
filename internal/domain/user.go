package domain

import "time"

// User represents the users table
type User struct {
	ID       int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username string    `gorm:"column:username;size:16;uniqueIndex" json:"username"`
	Password string    `gorm:"column:password;size:255" json:"-"`
	Nickname string    `gorm:"column:nickname;size:32" json:"nickname"`
	Icon     string    `gorm:"column:icon;type:text" json:"icon"`
	Created  time.Time `gorm:"column:created" json:"created"`
	Modified time.Time `gorm:"column:modified" json:"modified"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// AuthorProfile is the public part of a user shown next to content
type AuthorProfile struct {
	UserID   int    `json:"user_id"`
	Nickname string `json:"nickname"`
	Icon     string `json:"icon"`
}

// Profile returns the public profile of the user
func (u *User) Profile() AuthorProfile {
	return AuthorProfile{UserID: u.ID, Nickname: u.Nickname, Icon: u.Icon}
}

// Identity is the authenticated caller of a request, supplied by the session
// middleware and passed explicitly to operations that need it
type Identity struct {
	UserID   int
	Username string
}

// Owns reports whether the identity is the author authorID
func (i *Identity) Owns(authorID int) bool {
	return i != nil && i.UserID == authorID
}

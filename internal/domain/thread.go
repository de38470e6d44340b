package domain

import "time"

// ThreadView is a bulletin with its author, star count and ordered comments
type ThreadView struct {
	Bulletin  *Bulletin        `json:"bulletin"`
	Author    AuthorProfile    `json:"author"`
	StarCount int64            `json:"star_count"`
	Editable  bool             `json:"editable"`
	Comments  []*ThreadComment `json:"comments"`
}

// ThreadComment is one comment of a thread, annotated for display
type ThreadComment struct {
	ID        int           `json:"id"`
	Author    AuthorProfile `json:"author"`
	Body      string        `json:"comment"`
	Created   time.Time     `json:"created"`
	StarCount int64         `json:"star_count"`
	Editable  bool          `json:"editable"`
}

package entity

import "time"

// Comment represents a reader comment attached to a post.
// Comments are immutable once written; there is no update or delete path.
type Comment struct {
	ID        string
	PostID    string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}

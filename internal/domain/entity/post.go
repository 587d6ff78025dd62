package entity

import "time"

// Post represents a blog post entity in the system.
// AuthorID references the user who wrote the post; the reference is
// enforced by the store's foreign key, not checked here.
type Post struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	CreatedAt time.Time
}

package repository

import (
	"context"
	"time"

	"github.com/rasel-stacklearner/blogger/internal/domain/entity"
)

// AuthorSummary is the denormalized author projection embedded in post reads.
type AuthorSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PostWithAuthor represents a post annotated with its author summary,
// as returned by the listing query's left join.
type PostWithAuthor struct {
	Post   *entity.Post
	Author AuthorSummary
}

// CommentView is the comment projection carried inside a PostDetail.
type CommentView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostDetail is the composed read result for a single post: the post row,
// its author summary, and all comments ordered by creation time descending.
// This is the snapshot that gets serialized into the cache store, so its
// JSON field names are part of the cache entry format.
type PostDetail struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	Author    AuthorSummary `json:"author"`
	Comments  []CommentView `json:"comments"`
}

type PostRepository interface {
	// List retrieves all posts with their author summaries,
	// ordered by creation time descending.
	List(ctx context.Context) ([]PostWithAuthor, error)
	// GetDetail retrieves a single post with author and comments via one
	// join query. Returns (nil, nil) if no post matches the ID.
	GetDetail(ctx context.Context, id string) (*PostDetail, error)
	// Create inserts the post and fills in the store-generated ID and
	// creation timestamp. A non-existent author surfaces as the store's
	// foreign key violation.
	Create(ctx context.Context, post *entity.Post) error
}

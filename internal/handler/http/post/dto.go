// Package post provides HTTP handlers for post-related endpoints.
// It includes handlers for listing posts, fetching the post detail view
// and creating posts.
package post

import (
	"time"

	"github.com/rasel-stacklearner/blogger/internal/repository"
)

// DTO represents the JSON structure for a created or listed post.
type DTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SummaryDTO is a post annotated with its denormalized author summary,
// as served by the list endpoint.
type SummaryDTO struct {
	ID        string                   `json:"id"`
	Title     string                   `json:"title"`
	Content   string                   `json:"content"`
	CreatedAt time.Time                `json:"createdAt"`
	Author    repository.AuthorSummary `json:"author"`
}

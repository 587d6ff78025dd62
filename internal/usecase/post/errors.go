// Package post provides use cases for managing blog posts.
// It implements business logic for creating and querying posts, including
// the cache-aside read path for the post detail view.
package post

import "errors"

// Sentinel errors for post use case operations.
var (
	// ErrPostNotFound indicates that the requested post was not found.
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidPostID indicates that the provided post ID is invalid.
	// Post IDs must be valid UUIDs.
	ErrInvalidPostID = errors.New("invalid post ID")
)

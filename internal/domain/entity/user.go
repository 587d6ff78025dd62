// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as User, Post
// and Comment, along with their validation rules and domain-specific errors.
package entity

import "time"

// User represents a registered author in the system.
// The ID and CreatedAt fields are assigned by the store on insert.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

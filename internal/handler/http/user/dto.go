// Package user provides HTTP handlers for user-related endpoints.
package user

import "time"

// DTO represents the JSON structure for user data transfer.
type DTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Package repository defines the persistence interfaces consumed by the use case layer.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"github.com/rasel-stacklearner/blogger/internal/domain/entity"
)

type UserRepository interface {
	// List retrieves all users ordered by creation time descending.
	List(ctx context.Context) ([]*entity.User, error)
	// Create inserts the user and fills in the store-generated ID and
	// creation timestamp. Returns entity.ErrDuplicateEmail when the email
	// unique constraint is violated; there is deliberately no prior
	// existence check, so concurrent submissions of the same email cannot
	// race past each other.
	Create(ctx context.Context, user *entity.User) error
}

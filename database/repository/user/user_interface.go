package userRepo

import (
	"context"

	"slotbook/models"
)

// UserRepository defines methods for identity data access.
type UserRepository interface {
	// Create inserts a new user record. It returns database.ErrDuplicate when the
	// userId is already taken, regardless of role.
	Create(ctx context.Context, user *models.User) error
	// GetByUserID retrieves a user by its unique identifier.
	GetByUserID(ctx context.Context, userID string) (*models.User, error)
	// GetByUserIDAndRole retrieves a user only if it holds the given role.
	GetByUserIDAndRole(ctx context.Context, userID, role string) (*models.User, error)
}

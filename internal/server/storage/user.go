package storage

import (
	"context"

	"github.com/iudanet/expensekeeper/internal/models"
)

// UserStorage defines interface for user credentials persistence
type UserStorage interface {
	// CreateUser creates a new user and returns its store-assigned ID
	// Returns ErrUserAlreadyExists if username is taken
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)

	// GetUserByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}

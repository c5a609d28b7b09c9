package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTransactionNotFound indicates that transaction with given id does not exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFoundOrForbidden indicates that transaction does not exist or belongs to another user.
	// The two cases are deliberately indistinguishable for the caller.
	ErrNotFoundOrForbidden = errors.New("transaction not found or not owned by user")
)

package storage

import (
	"context"

	"github.com/iudanet/expensekeeper/internal/models"
)

// TransactionStorage defines interface for transactions persistence
// Every method except GetTransaction is scoped by the owning user
type TransactionStorage interface {
	// CreateTransaction stores a new transaction owned by tx.UserID
	// Returns store-assigned ID. CategoryID and Amount are stored as-is
	CreateTransaction(ctx context.Context, tx *models.Transaction) (int64, error)

	// ListTransactions retrieves all transactions of the user in storage order
	// Returns empty slice if no transactions found
	ListTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error)

	// GetTransaction retrieves transaction by ID regardless of owner
	// Returns ErrTransactionNotFound if transaction doesn't exist
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)

	// UpdateTransaction applies non-nil fields of update to the user's transaction
	// Returns ErrNotFoundOrForbidden if no transaction with this ID belongs to the user
	UpdateTransaction(ctx context.Context, userID, id int64, update models.TransactionUpdate) error

	// DeleteTransaction deletes the user's transaction
	// Returns ErrNotFoundOrForbidden if no transaction with this ID belongs to the user
	DeleteTransaction(ctx context.Context, userID, id int64) error

	// Summarize returns income and expense totals of the user
	// Totals are 0 when the user has no transactions of that type
	Summarize(ctx context.Context, userID int64) (*models.Summary, error)
}

// Pinger checks that the underlying database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Storage combines everything the HTTP server needs from a backend
type Storage interface {
	UserStorage
	TransactionStorage
	Pinger
	Close() error
}

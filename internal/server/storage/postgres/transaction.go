package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/iudanet/expensekeeper/internal/models"
	"github.com/iudanet/expensekeeper/internal/server/storage"
)

var _ storage.Storage = (*Storage)(nil)

const transactionColumns = `id, type, category_id, amount, date, description, user_id`

// CreateTransaction stores a new transaction
func (s *Storage) CreateTransaction(ctx context.Context, tx *models.Transaction) (int64, error) {
	query := `
		INSERT INTO transactions (type, category_id, amount, date, description, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := s.pool.QueryRow(ctx, query,
		string(tx.Type),
		tx.CategoryID,
		tx.Amount,
		tx.Date,
		tx.Description,
		tx.UserID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create transaction: %w", err)
	}

	return id, nil
}

// ListTransactions retrieves all transactions of the user
func (s *Storage) ListTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	transactions := make([]*models.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves transaction by ID regardless of owner
func (s *Storage) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return tx, nil
}

// UpdateTransaction applies partial update to the user's transaction
func (s *Storage) UpdateTransaction(ctx context.Context, userID, id int64, update models.TransactionUpdate) error {
	query := `
		UPDATE transactions
		SET type = COALESCE($1::text, type),
		    category_id = COALESCE($2::bigint, category_id),
		    amount = COALESCE($3::double precision, amount),
		    date = COALESCE($4::text, date),
		    description = COALESCE($5::text, description)
		WHERE id = $6 AND user_id = $7
	`

	var txType *string
	if update.Type != nil {
		v := string(*update.Type)
		txType = &v
	}

	cmdTag, err := s.pool.Exec(ctx, query,
		txType,
		update.CategoryID,
		update.Amount,
		update.Date,
		update.Description,
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFoundOrForbidden
	}

	return nil
}

// DeleteTransaction deletes the user's transaction
func (s *Storage) DeleteTransaction(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	cmdTag, err := s.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFoundOrForbidden
	}

	return nil
}

// Summarize returns income and expense totals of the user
func (s *Storage) Summarize(ctx context.Context, userID int64) (*models.Summary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = $1), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = $2), 0)
		FROM transactions
		WHERE user_id = $3
	`

	var income, expense float64
	err := s.pool.QueryRow(ctx, query,
		string(models.TransactionTypeIncome),
		string(models.TransactionTypeExpense),
		userID,
	).Scan(&income, &expense)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	return models.NewSummary(income, expense), nil
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	tx := &models.Transaction{}
	var txType string

	if err := row.Scan(
		&tx.ID,
		&txType,
		&tx.CategoryID,
		&tx.Amount,
		&tx.Date,
		&tx.Description,
		&tx.UserID,
	); err != nil {
		return nil, err
	}

	tx.Type = models.TransactionType(txType)
	return tx, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/expensekeeper/internal/models"
	"github.com/iudanet/expensekeeper/internal/server/storage"
)

var _ storage.Storage = (*Storage)(nil)

const transactionColumns = `id, type, category_id, amount, date, description, user_id`

// CreateTransaction stores a new transaction
func (s *Storage) CreateTransaction(ctx context.Context, tx *models.Transaction) (int64, error) {
	query := `
		INSERT INTO transactions (type, category_id, amount, date, description, user_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		string(tx.Type),
		nullInt64(tx.CategoryID),
		tx.Amount,
		tx.Date,
		tx.Description,
		tx.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction id: %w", err)
	}

	return id, nil
}

// ListTransactions retrieves all transactions of the user
func (s *Storage) ListTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = ?
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	transactions := make([]*models.Transaction, 0)

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
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
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTransactionNotFound
		}
		return nil, err
	}

	return tx, nil
}

// UpdateTransaction applies partial update to the user's transaction
func (s *Storage) UpdateTransaction(ctx context.Context, userID, id int64, update models.TransactionUpdate) error {
	// COALESCE оставляет старое значение для полей, которые не пришли в запросе
	query := `
		UPDATE transactions
		SET type = COALESCE(?, type),
		    category_id = COALESCE(?, category_id),
		    amount = COALESCE(?, amount),
		    date = COALESCE(?, date),
		    description = COALESCE(?, description)
		WHERE id = ? AND user_id = ?
	`

	var txType sql.NullString
	if update.Type != nil {
		txType = sql.NullString{String: string(*update.Type), Valid: true}
	}

	result, err := s.db.ExecContext(ctx, query,
		txType,
		nullInt64(update.CategoryID),
		nullFloat64(update.Amount),
		nullString(update.Date),
		nullString(update.Description),
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return checkAffected(result)
}

// DeleteTransaction deletes the user's transaction
func (s *Storage) DeleteTransaction(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM transactions WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return checkAffected(result)
}

// Summarize returns income and expense totals of the user
func (s *Storage) Summarize(ctx context.Context, userID int64) (*models.Summary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = ? THEN amount END), 0.0),
			COALESCE(SUM(CASE WHEN type = ? THEN amount END), 0.0)
		FROM transactions
		WHERE user_id = ?
	`

	var income, expense float64
	err := s.db.QueryRowContext(ctx, query,
		string(models.TransactionTypeIncome),
		string(models.TransactionTypeExpense),
		userID,
	).Scan(&income, &expense)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	return models.NewSummary(income, expense), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	tx := &models.Transaction{}
	var (
		txType     string
		categoryID sql.NullInt64
	)

	err := row.Scan(
		&tx.ID,
		&txType,
		&categoryID,
		&tx.Amount,
		&tx.Date,
		&tx.Description,
		&tx.UserID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	tx.Type = models.TransactionType(txType)
	if categoryID.Valid {
		tx.CategoryID = &categoryID.Int64
	}

	return tx, nil
}

// checkAffected превращает "0 строк изменено" в ErrNotFoundOrForbidden
func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrNotFoundOrForbidden
	}

	return nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullFloat64(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

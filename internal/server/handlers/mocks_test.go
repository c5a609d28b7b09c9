package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/expensekeeper/internal/models"
	"github.com/iudanet/expensekeeper/internal/server/events"
	"github.com/iudanet/expensekeeper/internal/server/storage"
)

var errDatabase = errors.New("database is locked")

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // username -> User
	createError error
	getError    error
	nextID      int64
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	if m.createError != nil {
		return 0, m.createError
	}
	if _, exists := m.users[username]; exists {
		return 0, storage.ErrUserAlreadyExists
	}
	m.nextID++
	m.users[username] = &models.User{
		ID:           m.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return m.nextID, nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

// mockTransactionStorage is an in-memory TransactionStorage
type mockTransactionStorage struct {
	txs    map[int64]*models.Transaction
	err    error
	nextID int64
}

func newMockTransactionStorage() *mockTransactionStorage {
	return &mockTransactionStorage{txs: make(map[int64]*models.Transaction)}
}

func (m *mockTransactionStorage) CreateTransaction(ctx context.Context, tx *models.Transaction) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	stored := *tx
	stored.ID = m.nextID
	m.txs[stored.ID] = &stored
	return stored.ID, nil
}

func (m *mockTransactionStorage) ListTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*models.Transaction, 0)
	for id := int64(1); id <= m.nextID; id++ {
		if tx, ok := m.txs[id]; ok && tx.UserID == userID {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (m *mockTransactionStorage) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	tx, ok := m.txs[id]
	if !ok {
		return nil, storage.ErrTransactionNotFound
	}
	return tx, nil
}

func (m *mockTransactionStorage) UpdateTransaction(ctx context.Context, userID, id int64, update models.TransactionUpdate) error {
	if m.err != nil {
		return m.err
	}
	tx, ok := m.txs[id]
	if !ok || tx.UserID != userID {
		return storage.ErrNotFoundOrForbidden
	}
	if update.Type != nil {
		tx.Type = *update.Type
	}
	if update.CategoryID != nil {
		tx.CategoryID = update.CategoryID
	}
	if update.Amount != nil {
		tx.Amount = *update.Amount
	}
	if update.Date != nil {
		tx.Date = *update.Date
	}
	if update.Description != nil {
		tx.Description = *update.Description
	}
	return nil
}

func (m *mockTransactionStorage) DeleteTransaction(ctx context.Context, userID, id int64) error {
	if m.err != nil {
		return m.err
	}
	tx, ok := m.txs[id]
	if !ok || tx.UserID != userID {
		return storage.ErrNotFoundOrForbidden
	}
	delete(m.txs, id)
	return nil
}

func (m *mockTransactionStorage) Summarize(ctx context.Context, userID int64) (*models.Summary, error) {
	if m.err != nil {
		return nil, m.err
	}
	var income, expense float64
	for _, tx := range m.txs {
		if tx.UserID != userID {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			income += tx.Amount
		case models.TransactionTypeExpense:
			expense += tx.Amount
		}
	}
	return models.NewSummary(income, expense), nil
}

// mockPublisher records published events
type mockPublisher struct {
	err       error
	published []events.Event
}

func (m *mockPublisher) Publish(ctx context.Context, event events.Event) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, event)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error { return m.err }

// withAuthUser имитирует работу AuthMiddleware
func withAuthUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(WithUser(r.Context(), userID, "tester"))
}

// withURLParam кладет параметр маршрута chi в контекст запроса
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

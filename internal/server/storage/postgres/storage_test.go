package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/expensekeeper/internal/models"
	"github.com/iudanet/expensekeeper/internal/server/storage"
)

// testDSNEnv переменная окружения с DSN тестовой БД.
// Без нее тесты пропускаются: поднимать PostgreSQL в unit-тестах мы не умеем
const testDSNEnv = "EXPENSEKEEPER_TEST_POSTGRES_DSN"

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}

	ctx := context.Background()
	s, err := New(ctx, dsn)
	require.NoError(t, err)

	_, err = s.pool.Exec(ctx, `TRUNCATE transactions, categories, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestStorage_Users(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	id, err := s.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = s.CreateUser(ctx, "alice", "other")
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)

	user, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "hash", user.PasswordHash)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	byID, err := s.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestStorage_Transactions(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	alice, err := s.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	bob, err := s.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)

	category := int64(7)
	incomeID, err := s.CreateTransaction(ctx, &models.Transaction{
		Type:        models.TransactionTypeIncome,
		CategoryID:  &category,
		Amount:      100,
		Date:        "2024-03-01",
		Description: "salary",
		UserID:      alice,
	})
	require.NoError(t, err)

	_, err = s.CreateTransaction(ctx, &models.Transaction{
		Type:   models.TransactionTypeExpense,
		Amount: 40,
		UserID: alice,
	})
	require.NoError(t, err)

	list, err := s.ListTransactions(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, incomeID, list[0].ID)
	require.NotNil(t, list[0].CategoryID)
	assert.Equal(t, category, *list[0].CategoryID)
	assert.Nil(t, list[1].CategoryID)

	bobList, err := s.ListTransactions(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobList)

	summary, err := s.Summarize(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, models.NewSummary(100, 40), summary)

	amount := 150.0
	assert.ErrorIs(t, s.UpdateTransaction(ctx, bob, incomeID, models.TransactionUpdate{Amount: &amount}), storage.ErrNotFoundOrForbidden)
	require.NoError(t, s.UpdateTransaction(ctx, alice, incomeID, models.TransactionUpdate{Amount: &amount}))

	got, err := s.GetTransaction(ctx, incomeID)
	require.NoError(t, err)
	assert.Equal(t, amount, got.Amount)
	assert.Equal(t, "salary", got.Description)

	assert.ErrorIs(t, s.DeleteTransaction(ctx, bob, incomeID), storage.ErrNotFoundOrForbidden)
	require.NoError(t, s.DeleteTransaction(ctx, alice, incomeID))

	_, err = s.GetTransaction(ctx, incomeID)
	assert.ErrorIs(t, err, storage.ErrTransactionNotFound)

	summary, err = s.Summarize(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, &models.Summary{}, summary)
}

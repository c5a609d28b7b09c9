package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/iudanet/expensekeeper/internal/client/api"
	"github.com/iudanet/expensekeeper/internal/client/iocli"
	"github.com/iudanet/expensekeeper/internal/client/storage"
	pkgapi "github.com/iudanet/expensekeeper/pkg/api"
)

//go:generate moq -out api_client_mock_test.go . APIClient

// APIClient описывает вызовы сервера, которые использует консольный клиент
type APIClient interface {
	BaseURL() string
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	CreateTransaction(ctx context.Context, token string, req pkgapi.CreateTransactionRequest) (*pkgapi.CreateTransactionResponse, error)
	ListTransactions(ctx context.Context, token string) ([]pkgapi.Transaction, error)
	GetTransaction(ctx context.Context, token string, id int64) (*pkgapi.Transaction, error)
	UpdateTransaction(ctx context.Context, token string, id int64, req pkgapi.UpdateTransactionRequest) (*pkgapi.MessageResponse, error)
	DeleteTransaction(ctx context.Context, token string, id int64) (*pkgapi.MessageResponse, error)
	Summary(ctx context.Context, token string) (*pkgapi.SummaryResponse, error)
}

var _ APIClient = (*api.Client)(nil)

var (
	// ErrNotAuthenticated возвращается командами, которым нужна сессия
	ErrNotAuthenticated = errors.New("not authenticated. Please run 'expensekeeper login' first")

	// ErrSessionExpired возвращается, если токен сохраненной сессии истек
	ErrSessionExpired = errors.New("session expired. Please run 'expensekeeper login' again")

	// ErrUnknownCommand возвращается Run для неизвестной команды
	ErrUnknownCommand = errors.New("unknown command")
)

type Cli struct {
	apiClient APIClient
	authStore storage.AuthStorage
	io        iocli.IO
	now       func() time.Time
}

func New(apiClient APIClient, authStore storage.AuthStorage, io iocli.IO) *Cli {
	return &Cli{
		apiClient: apiClient,
		authStore: authStore,
		io:        io,
		now:       time.Now,
	}
}

// session возвращает сохраненную сессию с непросроченным токеном
func (c *Cli) session(ctx context.Context) (*storage.AuthData, error) {
	authData, err := c.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	if authData.Expired(c.now()) {
		return nil, ErrSessionExpired
	}

	return authData, nil
}

// checkAuthError удаляет локальную сессию, если сервер отклонил токен
func (c *Cli) checkAuthError(ctx context.Context, err error) error {
	if !api.IsUnauthorized(err) {
		return err
	}

	if delErr := c.authStore.DeleteAuth(ctx); delErr != nil && !errors.Is(delErr, storage.ErrAuthNotFound) {
		return fmt.Errorf("%w (failed to clear session: %v)", err, delErr)
	}

	return fmt.Errorf("%w. Local session cleared, please login again", err)
}

func PrintUsage(w io.Writer) {
	p := func(s string) { _, _ = fmt.Fprintln(w, s) }

	p("ExpenseKeeper Client")
	p("")
	p("Usage:")
	p("  expensekeeper [OPTIONS] COMMAND [ARGS]")
	p("")
	p("Options:")
	p("  --version               Show version information")
	p("  --server URL            Server URL (default: http://localhost:3000)")
	p("  --db PATH               Path to local session database (default: expensekeeper-client.db)")
	p("")
	p("Commands:")
	p("  register                Register new user")
	p("  login                   Login to server")
	p("  logout                  Delete local session")
	p("  status                  Show authentication status")
	p("  add [flags]             Add transaction (--type, --amount, --date, --category, --description)")
	p("  list                    List transactions")
	p("  get <id>                Show transaction details")
	p("  update <id> [flags]     Update only the given fields of a transaction")
	p("  delete <id>             Delete transaction")
	p("  summary                 Show total income, expense and balance")
	p("")
	p("Examples:")
	p("  expensekeeper register")
	p("  expensekeeper login")
	p("  expensekeeper add --type expense --amount 12.50 --description coffee")
	p("  expensekeeper update 3 --amount 15")
	p("  expensekeeper --server https://example.com summary")
}

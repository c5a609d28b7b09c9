package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/expensekeeper/pkg/api"
)

// Error описывает не-2xx ответ сервера
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsUnauthorized сообщает, что сервер отклонил токен (отсутствует, истек или невалиден)
func IsUnauthorized(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// CreateTransaction создает транзакцию
func (c *Client) CreateTransaction(ctx context.Context, token string, req api.CreateTransactionRequest) (*api.CreateTransactionResponse, error) {
	var resp api.CreateTransactionResponse
	if err := c.doRequest(ctx, http.MethodPost, "/transactions", token, req, &resp); err != nil {
		return nil, fmt.Errorf("create transaction request failed: %w", err)
	}
	return &resp, nil
}

// ListTransactions возвращает все транзакции пользователя
func (c *Client) ListTransactions(ctx context.Context, token string) ([]api.Transaction, error) {
	var resp api.TransactionListResponse
	if err := c.doRequest(ctx, http.MethodGet, "/transactions", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list transactions request failed: %w", err)
	}
	return resp.Transactions, nil
}

// GetTransaction возвращает транзакцию по ID
func (c *Client) GetTransaction(ctx context.Context, token string, id int64) (*api.Transaction, error) {
	var resp api.Transaction
	if err := c.doRequest(ctx, http.MethodGet, transactionPath(id), token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get transaction request failed: %w", err)
	}
	return &resp, nil
}

// UpdateTransaction частично обновляет транзакцию
func (c *Client) UpdateTransaction(ctx context.Context, token string, id int64, req api.UpdateTransactionRequest) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPut, transactionPath(id), token, req, &resp); err != nil {
		return nil, fmt.Errorf("update transaction request failed: %w", err)
	}
	return &resp, nil
}

// DeleteTransaction удаляет транзакцию
func (c *Client) DeleteTransaction(ctx context.Context, token string, id int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodDelete, transactionPath(id), token, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete transaction request failed: %w", err)
	}
	return &resp, nil
}

// Summary возвращает итоги по доходам и расходам
func (c *Client) Summary(ctx context.Context, token string) (*api.SummaryResponse, error) {
	var resp api.SummaryResponse
	if err := c.doRequest(ctx, http.MethodGet, "/summary", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("summary request failed: %w", err)
	}
	return &resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/health", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

func transactionPath(id int64) string {
	return "/transactions/" + strconv.FormatInt(id, 10)
}

// doRequest выполняет HTTP запрос
// token добавляется как Bearer, если не пустой
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

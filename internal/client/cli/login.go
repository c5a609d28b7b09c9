package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/expensekeeper/internal/client/storage"
	"github.com/iudanet/expensekeeper/pkg/api"
)

// tokenClaims поля токена, которые клиент читает без проверки подписи.
// Подпись проверяет только сервер
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, password, err := c.readCredentials()
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	authData, err := c.newSession(username, resp)
	if err != nil {
		return err
	}

	if err := c.authStore.SaveAuth(ctx, authData); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", authData.Username)
	c.io.Printf("Token expires: %s\n", time.Unix(authData.ExpiresAt, 0).Format(time.RFC3339))

	return nil
}

func (c *Cli) newSession(username string, resp *api.TokenResponse) (*storage.AuthData, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.Token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	authData := &storage.AuthData{
		Username:  username,
		UserID:    claims.UserID,
		Token:     resp.Token,
		ServerURL: c.apiClient.BaseURL(),
	}

	switch {
	case claims.ExpiresAt != nil:
		authData.ExpiresAt = claims.ExpiresAt.Unix()
	case resp.ExpiresIn > 0:
		authData.ExpiresAt = c.now().Unix() + resp.ExpiresIn
	default:
		return nil, fmt.Errorf("token has no expiration")
	}

	return authData, nil
}

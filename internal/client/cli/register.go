package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/expensekeeper/internal/validation"
	"github.com/iudanet/expensekeeper/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, password, err := c.readCredentials()
	if err != nil {
		return err
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if confirm != password {
		return fmt.Errorf("passwords do not match")
	}

	resp, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ %s\n", resp.Message)
	c.io.Printf("User ID: %d\n", resp.UserID)
	c.io.Println("Run 'expensekeeper login' to start a session.")

	return nil
}

// readCredentials запрашивает username и пароль
func (c *Cli) readCredentials() (string, string, error) {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}

	if err := validation.ValidateCredentials(username, password); err != nil {
		return "", "", err
	}

	return username, password, nil
}

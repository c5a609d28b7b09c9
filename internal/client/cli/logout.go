package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/expensekeeper/internal/client/storage"
)

// runLogout удаляет локальную сессию. Сервер токены не отзывает
func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.authStore.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("No active session.")
			return nil
		}
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/expensekeeper/internal/validation"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing transaction ID. Usage: expensekeeper delete <id>")
	}

	id, err := validation.ParseID(args[0])
	if err != nil {
		return err
	}

	authData, err := c.session(ctx)
	if err != nil {
		return err
	}

	resp, err := c.apiClient.DeleteTransaction(ctx, authData.Token, id)
	if err != nil {
		return c.checkAuthError(ctx, err)
	}

	c.io.Printf("✓ %s\n", resp.Message)

	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/expensekeeper/internal/validation"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing transaction ID. Usage: expensekeeper get <id>")
	}

	id, err := validation.ParseID(args[0])
	if err != nil {
		return err
	}

	authData, err := c.session(ctx)
	if err != nil {
		return err
	}

	tx, err := c.apiClient.GetTransaction(ctx, authData.Token, id)
	if err != nil {
		return c.checkAuthError(ctx, err)
	}

	c.io.Println("=== Transaction ===")
	c.io.Printf("ID:          %d\n", tx.ID)
	c.io.Printf("Type:        %s\n", tx.Type)
	c.io.Printf("Amount:      %.2f\n", tx.Amount)
	c.io.Printf("Date:        %s\n", tx.Date)
	c.io.Printf("Category:    %s\n", formatCategory(*tx))
	c.io.Printf("Description: %s\n", tx.Description)

	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/expensekeeper/internal/validation"
	"github.com/iudanet/expensekeeper/pkg/api"
)

// runUpdate отправляет только поля, заданные флагами
func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing transaction ID. Usage: expensekeeper update <id> [flags]")
	}

	id, err := validation.ParseID(args[0])
	if err != nil {
		return err
	}

	flags := newTransactionFlags("update", c)
	if err := flags.fs.Parse(args[1:]); err != nil {
		return err
	}
	set := flags.visited()

	var req api.UpdateTransactionRequest
	if set["type"] {
		if err := validateType(flags.txType); err != nil {
			return err
		}
		req.Type = &flags.txType
	}
	if set["amount"] {
		req.Amount = &flags.amount
	}
	if set["date"] {
		req.Date = &flags.date
	}
	if set["category"] {
		req.CategoryID = &flags.category
	}
	if set["description"] {
		req.Description = &flags.description
	}

	if len(set) == 0 {
		return fmt.Errorf("nothing to update. Use --type, --amount, --date, --category or --description")
	}

	authData, err := c.session(ctx)
	if err != nil {
		return err
	}

	resp, err := c.apiClient.UpdateTransaction(ctx, authData.Token, id, req)
	if err != nil {
		return c.checkAuthError(ctx, err)
	}

	c.io.Printf("✓ %s\n", resp.Message)

	return nil
}

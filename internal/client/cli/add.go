package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/expensekeeper/pkg/api"
)

const dateLayout = "2006-01-02"

// runAdd создает транзакцию. Незаданные type и amount запрашиваются интерактивно
func (c *Cli) runAdd(ctx context.Context, args []string) error {
	flags := newTransactionFlags("add", c)
	if err := flags.fs.Parse(args); err != nil {
		return err
	}
	set := flags.visited()

	authData, err := c.session(ctx)
	if err != nil {
		return err
	}

	if flags.txType == "" {
		flags.txType, err = c.io.ReadInput("Type (income/expense): ")
		if err != nil {
			return fmt.Errorf("failed to read type: %w", err)
		}
	}
	if err := validateType(flags.txType); err != nil {
		return err
	}

	if !set["amount"] {
		raw, err := c.io.ReadInput("Amount: ")
		if err != nil {
			return fmt.Errorf("failed to read amount: %w", err)
		}
		if flags.amount, err = parseAmount(raw); err != nil {
			return err
		}
	}

	if flags.date == "" {
		flags.date = c.now().Format(dateLayout)
	}

	req := api.CreateTransactionRequest{
		Type:        flags.txType,
		Amount:      flags.amount,
		Date:        flags.date,
		Description: flags.description,
	}
	if set["category"] {
		req.CategoryID = &flags.category
	}

	resp, err := c.apiClient.CreateTransaction(ctx, authData.Token, req)
	if err != nil {
		return c.checkAuthError(ctx, err)
	}

	c.io.Printf("✓ %s\n", resp.Message)
	c.io.Printf("ID: %d\n", resp.ID)

	return nil
}

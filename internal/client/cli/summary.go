package cli

import "context"

func (c *Cli) runSummary(ctx context.Context) error {
	authData, err := c.session(ctx)
	if err != nil {
		return err
	}

	summary, err := c.apiClient.Summary(ctx, authData.Token)
	if err != nil {
		return c.checkAuthError(ctx, err)
	}

	c.io.Println("=== Summary ===")
	c.io.Printf("Total income:  %.2f\n", summary.TotalIncome)
	c.io.Printf("Total expense: %.2f\n", summary.TotalExpense)
	c.io.Printf("Balance:       %.2f\n", summary.Balance)

	return nil
}

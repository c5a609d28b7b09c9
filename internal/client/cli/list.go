package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/iudanet/expensekeeper/pkg/api"
)

func (c *Cli) runList(ctx context.Context) error {
	authData, err := c.session(ctx)
	if err != nil {
		return err
	}

	transactions, err := c.apiClient.ListTransactions(ctx, authData.Token)
	if err != nil {
		return c.checkAuthError(ctx, err)
	}

	if len(transactions) == 0 {
		c.io.Println("No transactions found.")
		c.io.Println()
		c.io.Println("Use 'expensekeeper add' to add your first transaction.")
		return nil
	}

	c.io.Printf("Found %d transaction(s):\n\n", len(transactions))

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTYPE\tAMOUNT\tDATE\tCATEGORY\tDESCRIPTION")
	for _, tx := range transactions {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%s\t%s\n",
			tx.ID, tx.Type, tx.Amount, tx.Date, formatCategory(tx), tx.Description)
	}

	return w.Flush()
}

func formatCategory(tx api.Transaction) string {
	if tx.CategoryID == nil {
		return "-"
	}
	return strconv.FormatInt(*tx.CategoryID, 10)
}

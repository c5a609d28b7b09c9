package cli

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/expensekeeper/internal/models"
	"github.com/iudanet/expensekeeper/internal/validation"
)

// transactionFlags флаги полей транзакции, общие для add и update
type transactionFlags struct {
	fs          *flag.FlagSet
	txType      string
	date        string
	description string
	amount      float64
	category    int64
}

func newTransactionFlags(name string, c *Cli) *transactionFlags {
	f := &transactionFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.SetOutput(c.io)
	f.fs.StringVar(&f.txType, "type", "", "transaction type: income or expense")
	f.fs.Float64Var(&f.amount, "amount", 0, "transaction amount")
	f.fs.StringVar(&f.date, "date", "", "transaction date, YYYY-MM-DD")
	f.fs.Int64Var(&f.category, "category", 0, "category ID")
	f.fs.StringVar(&f.description, "description", "", "free text description")
	return f
}

// visited возвращает имена флагов, явно заданных в командной строке
func (f *transactionFlags) visited() map[string]bool {
	set := make(map[string]bool)
	f.fs.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})
	return set
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amount, nil
}

func validateType(raw string) error {
	return validation.ValidateTransactionType(models.TransactionType(raw))
}

package models

// TransactionType тип финансовой операции
type TransactionType string

const (
	// TransactionTypeIncome доход
	TransactionTypeIncome TransactionType = "income"
	// TransactionTypeExpense расход
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// Transaction представляет финансовую операцию пользователя
type Transaction struct {
	CategoryID  *int64          `json:"category_id"` // ссылка на категорию, не проверяется
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"` // календарная дата как есть, формат не навязывается
	Description string          `json:"description"`
	ID          int64           `json:"id"`
	Amount      float64         `json:"amount"`  // знак определяется Type, не суммой
	UserID      int64           `json:"user_id"` // владелец
}

// TransactionUpdate описывает частичное обновление транзакции.
// nil поле означает "не менять".
type TransactionUpdate struct {
	Type        *TransactionType
	CategoryID  *int64
	Amount      *float64
	Date        *string
	Description *string
}

// IsEmpty reports whether the update changes nothing.
func (u TransactionUpdate) IsEmpty() bool {
	return u.Type == nil &&
		u.CategoryID == nil &&
		u.Amount == nil &&
		u.Date == nil &&
		u.Description == nil
}

// Summary итоги по доходам и расходам пользователя
type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

// NewSummary builds a summary and derives the balance.
func NewSummary(totalIncome, totalExpense float64) *Summary {
	return &Summary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome - totalExpense,
	}
}

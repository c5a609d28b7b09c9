package api

// Transaction представляет транзакцию в API
type Transaction struct {
	CategoryID  *int64  `json:"category_id"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	UserID      int64   `json:"user_id"`
}

// CreateTransactionRequest представляет запрос на создание транзакции
type CreateTransactionRequest struct {
	CategoryID  *int64  `json:"category_id"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// CreateTransactionResponse представляет ответ на создание транзакции
type CreateTransactionResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// UpdateTransactionRequest представляет частичное обновление транзакции
// Отсутствующие в JSON поля не меняются
type UpdateTransactionRequest struct {
	Type        *string  `json:"type,omitempty"`
	CategoryID  *int64   `json:"category_id,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// TransactionListResponse представляет список транзакций пользователя
type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// SummaryResponse представляет итоги по доходам и расходам
type SummaryResponse struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

package validation

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iudanet/expensekeeper/internal/models"
)

// ErrValidation матчится через errors.Is для любой ошибки валидации входных данных
var ErrValidation = errors.New("validation error")

// Error описывает некорректное поле запроса
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Is позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

func newError(field, message string) error {
	return &Error{Field: field, Message: message}
}

// ValidateCredentials проверяет наличие username и password
// Формат не проверяется: любая непустая строка допустима
func ValidateCredentials(username, password string) error {
	if username == "" {
		return newError("username", "is required")
	}
	if password == "" {
		return newError("password", "is required")
	}
	return nil
}

// ValidateTransactionType проверяет, что тип транзакции income или expense
func ValidateTransactionType(t models.TransactionType) error {
	if t == "" {
		return newError("type", "is required")
	}
	if !t.IsValid() {
		return newError("type", fmt.Sprintf("must be %q or %q", models.TransactionTypeIncome, models.TransactionTypeExpense))
	}
	return nil
}

// ValidateUpdate проверяет частичное обновление транзакции
func ValidateUpdate(u models.TransactionUpdate) error {
	if u.IsEmpty() {
		return newError("body", "must contain at least one field to update")
	}
	if u.Type != nil {
		return ValidateTransactionType(*u.Type)
	}
	return nil
}

// ParseID разбирает идентификатор из URL
// Допустимы только положительные целые числа
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, newError("id", "must be a positive integer")
	}
	return id, nil
}

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost work factor bcrypt.
// Фиксирован, чтобы хеши, созданные разными инстансами сервера, были сопоставимы по стоимости
const PasswordCost = 10

// ErrInvalidHashFormat возвращается, если сохраненный хеш не является bcrypt хешем
var ErrInvalidHashFormat = errors.New("invalid password hash format")

// HashPassword хеширует пароль с помощью bcrypt
// Каждый вызов использует новую случайную соль, поэтому одинаковые пароли дают разные хеши
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword проверяет пароль против сохраненного bcrypt хеша
// Несовпадение пароля не является ошибкой: возвращается (false, nil)
// Ошибка возвращается только для поврежденного хеша (ErrInvalidHashFormat)
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("%w: %v", ErrInvalidHashFormat, err)
}

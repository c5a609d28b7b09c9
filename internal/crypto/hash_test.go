package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "regular password", password: "pw1"},
		{name: "unicode password", password: "пароль-123"},
		{name: "empty password", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash, "хеш не должен совпадать с паролем")

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, PasswordCost, cost)
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	// Одинаковый пароль должен давать разные хеши, но оба должны проходить проверку
	password := "same_password"

	hash1, err := HashPassword(password)
	require.NoError(t, err)
	hash2, err := HashPassword(password)
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)

	ok, err := VerifyPassword(password, hash1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(password, hash2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt не принимает пароли длиннее 72 байт
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}

	_, err := HashPassword(string(long))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hash password")
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct")
	require.NoError(t, err)

	tests := []struct {
		wantErr  error
		name     string
		password string
		hash     string
		want     bool
	}{
		{
			name:     "correct password",
			password: "correct",
			hash:     hash,
			want:     true,
		},
		{
			name:     "wrong password",
			password: "wrong",
			hash:     hash,
			want:     false,
		},
		{
			name:     "empty hash",
			password: "correct",
			hash:     "",
			wantErr:  ErrInvalidHashFormat,
		},
		{
			name:     "not a bcrypt hash",
			password: "correct",
			hash:     "5f4dcc3b5aa765d61d8327deb882cf99aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			wantErr:  ErrInvalidHashFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword(tt.password, tt.hash)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, ok)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

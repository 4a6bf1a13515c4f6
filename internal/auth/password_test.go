package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		secret   string
		expected string
	}{
		{
			// RFC 4231 test case 2
			name:     "rfc 4231 vector",
			password: "what do ya want for nothing?",
			secret:   "Jefe",
			expected: "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		},
		{
			name:     "empty password",
			password: "",
			secret:   "key",
			expected: "5d5d139563c95b5967b9bd9a8c9b233a9dedb45072794cd232dc1b74832607d0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HashPassword(tt.password, tt.secret))
		})
	}
}

func TestHashPassword_Deterministic(t *testing.T) {
	first := HashPassword("hunter2", "topsecret")
	second := HashPassword("hunter2", "topsecret")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.True(t, IsValidPasswordHash(first))
	assert.NotEqual(t, first, HashPassword("hunter2", "othersecret"))
}

func TestVerifyPassword(t *testing.T) {
	passwords := []string{"hunter2", "correct horse battery staple", "ünïcødé", " ", "a.b.c"}
	secrets := []string{"topsecret", "s", "0123456789abcdef0123456789abcdef"}

	for _, secret := range secrets {
		for _, password := range passwords {
			stored := HashPassword(password, secret)

			assert.True(t, VerifyPassword(password, stored, secret), "password %q secret %q", password, secret)
			assert.False(t, VerifyPassword(password+"x", stored, secret), "wrong password %q", password+"x")
			assert.False(t, VerifyPassword(password, stored, secret+"x"), "wrong secret")
		}
	}
}

func TestVerifyPassword_MalformedStoredHash(t *testing.T) {
	stored := HashPassword("hunter2", "topsecret")

	assert.False(t, VerifyPassword("hunter2", "", "topsecret"))
	assert.False(t, VerifyPassword("hunter2", stored[:63], "topsecret"))
	assert.False(t, VerifyPassword("hunter2", stored+"0", "topsecret"))
}

func TestIsValidPasswordHash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid lowercase hex", input: HashPassword("p", "s"), expected: true},
		{name: "uppercase hex", input: "5BDCC146BF60754E6A042426089575C75A003F089D2739839DEC58B964EC3843", expected: false},
		{name: "too short", input: "abc", expected: false},
		{name: "non hex character", input: "zbdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidPasswordHash(tt.input))
		})
	}
}

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret(32)
	require.NoError(t, err)
	assert.Len(t, secret, 64)

	other, err := GenerateSecret(32)
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)

	_, err = GenerateSecret(0)
	assert.Error(t, err)
}

package mocks

import (
	"strings"
)

// MockPasswordHasher implements auth.PasswordHasher for testing.
// Without HashFn it returns "hashed:" followed by the reversed password,
// which is never equal to the input.
type MockPasswordHasher struct {
	HashFn func(password string) (string, error)
	Calls  []string
}

// Hash implements auth.PasswordHasher
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.Calls = append(m.Calls, password)
	if m.HashFn != nil {
		return m.HashFn(password)
	}

	var b strings.Builder
	b.WriteString("hashed:")
	for i := len(password) - 1; i >= 0; i-- {
		b.WriteByte(password[i])
	}
	return b.String(), nil
}

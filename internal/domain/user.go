package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID     = errors.New("user ID cannot be empty")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrEmptyEmail      = errors.New("email cannot be empty")
	ErrEmptyFullName   = errors.New("full name cannot be empty")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes long")
	ErrEmptyPassword   = errors.New("password cannot be empty")
)

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

// DefaultRole is granted to every newly registered user.
const DefaultRole = "user"

// User represents a registered user of the shop.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Password       string    `json:"-"` // Plaintext, only set between registration and hashing
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	IsActive       bool      `json:"is_active"`
	Roles          []string  `json:"roles"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new active User with the default role.
// Email is trimmed and lowercased.
//
// NOTE: the user holds the plaintext password; the caller must hash it
// before the user is stored.
func NewUser(email, password, fullName string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		FullName:  strings.TrimSpace(fullName),
		Password:  password,
		IsActive:  true,
		Roles:     []string{DefaultRole},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// A user must carry either a plaintext password (before hashing) or a hash.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrEmptyEmail)
	}

	if !validateEmailFormat(u.Email) {
		return NewValidationError("email", "has an invalid format", ErrInvalidEmail)
	}

	if u.FullName == "" {
		return NewValidationError("full_name", "cannot be empty", ErrEmptyFullName)
	}

	if u.Password != "" {
		if len(u.Password) > maxPasswordBytes {
			return NewValidationError("password", "must be at most 72 bytes long", ErrPasswordTooLong)
		}
	} else if u.HashedPassword == "" {
		return NewValidationError("password", "cannot be empty", ErrEmptyPassword)
	}

	return nil
}

// validateEmailFormat requires a non-empty local part, an "@" and a domain
// containing a dot that is neither its first nor last character.
// Stricter RFC 5322 checks happen in request validation.
func validateEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domainPart := email[at+1:]
	if len(domainPart) < 3 {
		return false
	}

	dot := strings.IndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a person who owns acronyms.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Password     string    `json:"-"` // Plaintext password, used temporarily during registration
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// NewUser creates a new User with the given name, username and plaintext password.
// It generates a new UUID for the user ID and sets the creation/update timestamps.
//
// The caller is responsible for hashing the password before storing the user.
func NewUser(name, username, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      name,
		Username:  username,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Either a plaintext password (during registration) or a hash must be present.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "required field", ErrInvalidID)
	}
	if u.Name == "" {
		return NewValidationError("name", "required field", ErrValidation)
	}
	if u.Username == "" {
		return NewValidationError("username", "required field", ErrValidation)
	}
	if u.Password == "" && u.PasswordHash == "" {
		return NewValidationError("password", "required field", ErrValidation)
	}
	return nil
}

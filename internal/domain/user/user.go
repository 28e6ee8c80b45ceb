package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"salesdaily/internal/shared/authorization"
)

// User represents a sales rep or manager account (pure domain model without
// persistence concerns).
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         authorization.UserRole
	department   *string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user aggregate. The password hash is set separately
// by the use case after hashing the validated plaintext.
func NewUser(name, email string, role authorization.UserRole, department *string) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if department != nil && len(*department) > 100 {
		return nil, fmt.Errorf("department exceeds maximum length of 100 characters")
	}

	now := time.Now().UTC()
	return &User{
		name:       name,
		email:      strings.ToLower(email),
		role:       role,
		department: department,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(
	id uint,
	name, email, passwordHash string,
	role authorization.UserRole,
	department *string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		department:   department,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                          { return u.id }
func (u *User) Name() string                      { return u.name }
func (u *User) Email() string                     { return u.email }
func (u *User) PasswordHash() string              { return u.passwordHash }
func (u *User) Role() authorization.UserRole      { return u.role }
func (u *User) Department() *string               { return u.department }
func (u *User) CreatedAt() time.Time              { return u.createdAt }
func (u *User) UpdatedAt() time.Time              { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPasswordHash stores the bcrypt hash produced by the infrastructure hasher.
func (u *User) SetPasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

// UpdateProfile changes the mutable profile fields.
func (u *User) UpdateProfile(name string, department *string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if department != nil && len(*department) > 100 {
		return fmt.Errorf("department exceeds maximum length of 100 characters")
	}

	u.name = name
	u.department = department
	u.updatedAt = time.Now().UTC()
	return nil
}

// ChangeRole switches the user between sales and manager.
func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now().UTC()
	return nil
}

func validateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) == 0 {
		return fmt.Errorf("email is required")
	}
	if len(email) > 255 {
		return fmt.Errorf("email exceeds maximum length of 255 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

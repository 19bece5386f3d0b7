package domain

import (
	"regexp"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User is the domain view of an account. The password hash never leaves the
// repository layer.
type User struct {
	ID        uint
	Email     string
	Name      *string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return NewValidationError("Invalid email format")
	}

	return nil
}

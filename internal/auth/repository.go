package auth

import "errors"

// ErrUserNotFound is returned by every UserRepository implementation so
// the service can map lookups to ErrInvalidCredentials uniformly.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	Save(user *User) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*User, error)
}

package repository

import (
	"errors"

	"github.com/rizkyfahmi/todoauth/internal/domain/entity"
)

var (
	ErrDuplicateEmail = errors.New("user already exists")
	ErrNotFound       = errors.New("not found")
)

// UserRepository defines the interface for credential storage.
// Create must be atomic with respect to concurrent calls: of two concurrent
// creates with the same email, exactly one succeeds and the other observes
// ErrDuplicateEmail. Email matching is case-sensitive, as stored.
type UserRepository interface {
	Create(u *entity.User) error
	GetByEmail(email string) (*entity.User, error)
}

package memory

import (
	"sync"

	"github.com/rizkyfahmi/todoauth/internal/domain/entity"
	"github.com/rizkyfahmi/todoauth/internal/domain/repository"
)

// UserRepository is an in-process credential store. A single mutex guards the
// map so duplicate checks and inserts are atomic across concurrent requests.
type UserRepository struct {
	mu           sync.Mutex
	usersByEmail map[string]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{usersByEmail: make(map[string]*entity.User)}
}

func (r *UserRepository) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.usersByEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	cp := *u
	r.usersByEmail[u.Email] = &cp
	return nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.usersByEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)

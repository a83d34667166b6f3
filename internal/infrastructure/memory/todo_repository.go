package memory

import (
	"sync"

	"github.com/rizkyfahmi/todoauth/internal/domain/entity"
	"github.com/rizkyfahmi/todoauth/internal/domain/repository"
)

// TodoRepository is an in-process todo store partitioned by owner. Slices
// preserve creation order; one mutex keeps concurrent create/delete on the
// same partition from corrupting it.
type TodoRepository struct {
	mu          sync.Mutex
	todosByUser map[string][]*entity.Todo
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{todosByUser: make(map[string][]*entity.Todo)}
}

func (r *TodoRepository) ListForUser(userID string) ([]*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.todosByUser[userID]
	out := make([]*entity.Todo, 0, len(items))
	for _, t := range items {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *TodoRepository) Create(t *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.todosByUser[t.UserID] = append(r.todosByUser[t.UserID], &cp)
	return nil
}

func (r *TodoRepository) Delete(userID, todoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.todosByUser[userID]
	for i, t := range items {
		if t.ID == todoID {
			r.todosByUser[userID] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.TodoRepository = (*TodoRepository)(nil)

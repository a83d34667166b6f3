package repository

import "github.com/rizkyfahmi/todoauth/internal/domain/entity"

// TodoRepository defines per-owner todo storage. Every operation is scoped to
// a single owner's partition; an id that exists under a different owner
// behaves as absent. ListForUser returns todos in creation order.
type TodoRepository interface {
	ListForUser(userID string) ([]*entity.Todo, error)
	Create(t *entity.Todo) error
	Delete(userID, todoID string) error
}

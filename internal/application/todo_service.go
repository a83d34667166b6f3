package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/rizkyfahmi/todoauth/internal/domain/entity"
	repo "github.com/rizkyfahmi/todoauth/internal/domain/repository"
)

// TodoService orchestrates per-owner CRUD. The owner is always the subject of
// a verified token; no operation crosses owner partitions.
type TodoService struct {
	Repo repo.TodoRepository
}

func NewTodoService(repo repo.TodoRepository) *TodoService {
	return &TodoService{Repo: repo}
}

func (s *TodoService) ListForUser(userID string) ([]*entity.Todo, error) {
	return s.Repo.ListForUser(userID)
}

func (s *TodoService) CreateForUser(userID, title string, completed bool) (*entity.Todo, error) {
	t := &entity.Todo{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Completed: completed,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteForUser reports repository.ErrNotFound both for ids that do not exist
// and for ids owned by a different user.
func (s *TodoService) DeleteForUser(userID, todoID string) error {
	return s.Repo.Delete(userID, todoID)
}

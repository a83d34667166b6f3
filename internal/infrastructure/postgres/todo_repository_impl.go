package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rizkyfahmi/todoauth/internal/domain/entity"
	"github.com/rizkyfahmi/todoauth/internal/domain/repository"
)

type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) ListForUser(userID string) ([]*entity.Todo, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, completed, created_at
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Todo, 0)
	for rows.Next() {
		t := &entity.Todo{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TodoRepository) Create(t *entity.Todo) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO todos (id, user_id, title, completed, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, t.ID, t.UserID, t.Title, t.Completed, t.CreatedAt)
	return err
}

// Delete removes a todo only within the owner's partition; an id owned by
// someone else reports ErrNotFound.
func (r *TodoRepository) Delete(userID, todoID string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		DELETE FROM todos
		WHERE id = $1 AND user_id = $2
	`, todoID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diligence-app/diligence-backend/internal/domain/entity"
	"github.com/diligence-app/diligence-backend/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (user_id, title, description, duration_minutes, category, color, is_recurring)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, completed, created_at
	`, t.UserID, t.Title, t.Description, t.DurationMinutes, t.Category, t.Color, t.IsRecurring)

	return row.Scan(&t.ID, &t.Completed, &t.CreatedAt)
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, description, duration_minutes, category, color, is_recurring, completed, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.DurationMinutes,
			&t.Category, &t.Color, &t.IsRecurring, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update rewrites the full field set in a single statement. The user_id
// predicate makes a non-owned row indistinguishable from an absent one.
func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, duration_minutes = $3, category = $4,
		    color = $5, is_recurring = $6, completed = $7
		WHERE id = $8 AND user_id = $9
		RETURNING created_at
	`, t.Title, t.Description, t.DurationMinutes, t.Category, t.Color,
		t.IsRecurring, t.Completed, t.ID, t.UserID)

	if err := row.Scan(&t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`, taskID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

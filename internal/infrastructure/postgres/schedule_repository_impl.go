package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diligence-app/diligence-backend/internal/domain/entity"
	"github.com/diligence-app/diligence-backend/internal/domain/repository"
)

type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// Create inserts the placement only if the referenced task is owned by the
// acting user. INSERT ... SELECT evaluates the ownership check and the insert
// in one statement, so there is no window for the task to change hands
// between check and write.
func (r *ScheduleRepository) Create(ctx context.Context, s *entity.ScheduledTask) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO scheduled_tasks (user_id, task_id, scheduled_date, start_time, end_time)
		SELECT $1, t.id, $3::date, $4::time, $5::time
		FROM tasks t
		WHERE t.id = $2 AND t.user_id = $1
		RETURNING id, created_at
	`, s.UserID, s.TaskID, s.Date, s.StartTime, s.EndTime)

	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *ScheduleRepository) ListByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]entity.ScheduledTask, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.user_id, s.task_id,
		       to_char(s.scheduled_date, 'YYYY-MM-DD'),
		       to_char(s.start_time, 'HH24:MI'),
		       to_char(s.end_time, 'HH24:MI'),
		       s.created_at,
		       t.title, t.color, t.category, t.duration_minutes
		FROM scheduled_tasks s
		JOIN tasks t ON t.id = s.task_id
		WHERE s.user_id = $1
		  AND s.scheduled_date BETWEEN $2::date AND $3::date
		ORDER BY s.scheduled_date, s.start_time
	`, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.ScheduledTask, 0)
	for rows.Next() {
		var s entity.ScheduledTask
		if err := rows.Scan(&s.ID, &s.UserID, &s.TaskID, &s.Date, &s.StartTime, &s.EndTime,
			&s.CreatedAt, &s.TaskTitle, &s.TaskColor, &s.TaskCategory, &s.TaskDurationMinutes); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *ScheduleRepository) Delete(ctx context.Context, userID, scheduleID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM scheduled_tasks
		WHERE id = $1 AND user_id = $2
	`, scheduleID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ScheduleRepository = (*ScheduleRepository)(nil)

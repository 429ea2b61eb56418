package repository

import (
	"context"

	"github.com/diligence-app/diligence-backend/internal/domain/entity"
)

// TaskRepository defines ownership-scoped task persistence. Every operation
// other than Create carries the acting user id in its WHERE clause; a row
// belonging to someone else surfaces as ErrNotFound.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	ListByUser(ctx context.Context, userID string) ([]entity.Task, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, userID, taskID string) error
}

package repository

import (
	"context"

	"github.com/diligence-app/diligence-backend/internal/domain/entity"
)

// ScheduleRepository persists task placements. Create must verify that the
// referenced task is owned by s.UserID atomically with the insert itself and
// return ErrNotFound otherwise.
type ScheduleRepository interface {
	Create(ctx context.Context, s *entity.ScheduledTask) error
	ListByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]entity.ScheduledTask, error)
	Delete(ctx context.Context, userID, scheduleID string) error
}

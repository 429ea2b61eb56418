package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/diligence-app/diligence-backend/internal/domain/entity"
	repo "github.com/diligence-app/diligence-backend/internal/domain/repository"
)

var (
	ErrInvalidTimeRange = errors.New("end hour must be after start hour within 0-24")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrInvalidDate      = errors.New("invalid date")
)

const dateLayout = "2006-01-02"

// ScheduleService places tasks on the calendar. Hour-range validation happens
// here, before the store is touched; task ownership is enforced atomically by
// the repository's guarded insert.
type ScheduleService struct {
	Schedules repo.ScheduleRepository
	Logger    *logrus.Logger
}

func NewScheduleService(schedules repo.ScheduleRepository, logger *logrus.Logger) *ScheduleService {
	return &ScheduleService{Schedules: schedules, Logger: logger}
}

type ScheduleInput struct {
	TaskID    string
	Date      string // YYYY-MM-DD
	StartHour int
	EndHour   int
}

// Create validates 0 <= start <= 23, 0 <= end <= 24, end > start. An end
// hour of 24 means "until the end of the day" and is stored as 23:59 rather
// than rolling into the next day.
func (s *ScheduleService) Create(ctx context.Context, userID string, in ScheduleInput) (*entity.ScheduledTask, error) {
	if in.StartHour < 0 || in.StartHour > 23 {
		return nil, ErrInvalidTimeRange
	}
	if in.EndHour < 0 || in.EndHour > 24 {
		return nil, ErrInvalidTimeRange
	}
	if in.EndHour <= in.StartHour {
		return nil, ErrInvalidTimeRange
	}
	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
	}

	end := fmt.Sprintf("%02d:00", in.EndHour)
	if in.EndHour == 24 {
		end = "23:59"
	}

	sched := &entity.ScheduledTask{
		UserID:    userID,
		TaskID:    in.TaskID,
		Date:      in.Date,
		StartTime: fmt.Sprintf("%02d:00", in.StartHour),
		EndTime:   end,
	}
	if err := s.Schedules.Create(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// List returns placements in [startDate, endDate], ordered by date then start
// time. An inverted range is rejected before any query runs.
func (s *ScheduleService) List(ctx context.Context, userID, startDate, endDate string) ([]entity.ScheduledTask, error) {
	from, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, startDate)
	}
	to, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, endDate)
	}
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}
	return s.Schedules.ListByUserAndRange(ctx, userID, startDate, endDate)
}

func (s *ScheduleService) Delete(ctx context.Context, userID, scheduleID string) error {
	return s.Schedules.Delete(ctx, userID, scheduleID)
}

package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/diligence-app/diligence-backend/internal/domain/entity"
	repo "github.com/diligence-app/diligence-backend/internal/domain/repository"
)

// TaskService wraps task CRUD behind the acting user id. All repository
// statements are ownership-filtered; a miss comes back as repo.ErrNotFound.
type TaskService struct {
	Tasks  repo.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(tasks repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Logger: logger}
}

type TaskInput struct {
	Title           string
	Description     string
	DurationMinutes int
	Category        string
	Color           string
	IsRecurring     bool
	Completed       bool
}

// Create assigns ownership to userID. A new task always starts incomplete,
// whatever the caller sent.
func (s *TaskService) Create(ctx context.Context, userID string, in TaskInput) (*entity.Task, error) {
	t := &entity.Task{
		UserID:          userID,
		Title:           in.Title,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Category:        in.Category,
		Color:           in.Color,
		IsRecurring:     in.IsRecurring,
		Completed:       false,
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns the user's tasks, newest-created first.
func (s *TaskService) List(ctx context.Context, userID string) ([]entity.Task, error) {
	return s.Tasks.ListByUser(ctx, userID)
}

// Update replaces the full field set, including the completed flag. There is
// no dedicated completion transition; completed is a plain two-value flag.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, in TaskInput) (*entity.Task, error) {
	t := &entity.Task{
		ID:              taskID,
		UserID:          userID,
		Title:           in.Title,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Category:        in.Category,
		Color:           in.Color,
		IsRecurring:     in.IsRecurring,
		Completed:       in.Completed,
	}
	if err := s.Tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	return s.Tasks.Delete(ctx, userID, taskID)
}

package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/diligence-app/diligence-backend/internal/domain/entity"
	"github.com/diligence-app/diligence-backend/internal/domain/repository"
)

// In-memory repositories that mirror the SQL semantics: ownership predicates
// on every statement, zero matching rows -> repository.ErrNotFound.

type memUserRepo struct {
	seq   int
	users map[string]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, e := range r.users {
		if e.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", r.seq)
	u.IsActive = true
	u.CreatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memTaskRepo struct {
	seq   int
	tasks map[string]entity.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]entity.Task{}}
}

func (r *memTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.seq++
	t.ID = fmt.Sprintf("10000000-0000-0000-0000-%012d", r.seq)
	t.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	r.tasks[t.ID] = *t
	return nil
}

func (r *memTaskRepo) ListByUser(_ context.Context, userID string) ([]entity.Task, error) {
	out := make([]entity.Task, 0)
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTaskRepo) Update(_ context.Context, t *entity.Task) error {
	cur, ok := r.tasks[t.ID]
	if !ok || cur.UserID != t.UserID {
		return repository.ErrNotFound
	}
	t.CreatedAt = cur.CreatedAt
	r.tasks[t.ID] = *t
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, userID, taskID string) error {
	cur, ok := r.tasks[taskID]
	if !ok || cur.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

type memScheduleRepo struct {
	seq       int
	tasks     *memTaskRepo
	schedules map[string]entity.ScheduledTask
	listCalls int
}

func newMemScheduleRepo(tasks *memTaskRepo) *memScheduleRepo {
	return &memScheduleRepo{tasks: tasks, schedules: map[string]entity.ScheduledTask{}}
}

func (r *memScheduleRepo) Create(_ context.Context, s *entity.ScheduledTask) error {
	// mirror the guarded INSERT ... SELECT: task must exist and be owned
	t, ok := r.tasks.tasks[s.TaskID]
	if !ok || t.UserID != s.UserID {
		return repository.ErrNotFound
	}
	r.seq++
	s.ID = fmt.Sprintf("20000000-0000-0000-0000-%012d", r.seq)
	s.CreatedAt = time.Now()
	r.schedules[s.ID] = *s
	return nil
}

func (r *memScheduleRepo) ListByUserAndRange(_ context.Context, userID, startDate, endDate string) ([]entity.ScheduledTask, error) {
	r.listCalls++
	out := make([]entity.ScheduledTask, 0)
	for _, s := range r.schedules {
		// YYYY-MM-DD compares correctly as strings
		if s.UserID == userID && s.Date >= startDate && s.Date <= endDate {
			if t, ok := r.tasks.tasks[s.TaskID]; ok {
				s.TaskTitle = t.Title
				s.TaskColor = t.Color
				s.TaskCategory = t.Category
				s.TaskDurationMinutes = t.DurationMinutes
			}
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (r *memScheduleRepo) Delete(_ context.Context, userID, scheduleID string) error {
	cur, ok := r.schedules[scheduleID]
	if !ok || cur.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.schedules, scheduleID)
	return nil
}

var (
	_ repository.UserRepository     = (*memUserRepo)(nil)
	_ repository.TaskRepository     = (*memTaskRepo)(nil)
	_ repository.ScheduleRepository = (*memScheduleRepo)(nil)
)

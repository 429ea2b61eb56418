package application

import (
	"context"
	"errors"
	"testing"

	"github.com/diligence-app/diligence-backend/internal/domain/repository"
)

func scheduleFixture(t *testing.T) (*ScheduleService, *TaskService, *memScheduleRepo) {
	t.Helper()
	tasks := newMemTaskRepo()
	schedules := newMemScheduleRepo(tasks)
	return NewScheduleService(schedules, nil), NewTaskService(tasks, nil), schedules
}

func TestScheduleService_CreateValidRange(t *testing.T) {
	svc, taskSvc, _ := scheduleFixture(t)
	ctx := context.Background()

	task, err := taskSvc.Create(ctx, "user-a", TaskInput{Title: "work", DurationMinutes: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, err := svc.Create(ctx, "user-a", ScheduleInput{TaskID: task.ID, Date: "2026-03-02", StartHour: 9, EndHour: 17})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.StartTime != "09:00" || s.EndTime != "17:00" {
		t.Fatalf("time range mismatch: %s-%s", s.StartTime, s.EndTime)
	}
	if s.ID == "" {
		t.Fatal("expected an assigned id")
	}
}

func TestScheduleService_EndOfDayNormalizedTo2359(t *testing.T) {
	svc, taskSvc, _ := scheduleFixture(t)
	ctx := context.Background()

	task, err := taskSvc.Create(ctx, "user-a", TaskInput{Title: "late", DurationMinutes: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, err := svc.Create(ctx, "user-a", ScheduleInput{TaskID: task.ID, Date: "2026-03-02", StartHour: 22, EndHour: 24})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.EndTime != "23:59" {
		t.Fatalf("end hour 24 must normalize to 23:59, got %s", s.EndTime)
	}
}

func TestScheduleService_InvalidHourRanges(t *testing.T) {
	svc, taskSvc, _ := scheduleFixture(t)
	ctx := context.Background()

	task, err := taskSvc.Create(ctx, "user-a", TaskInput{Title: "work", DurationMinutes: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name       string
		start, end int
	}{
		{"equal hours", 10, 10},
		{"end before start", 17, 9},
		{"negative start", -1, 5},
		{"start past 23", 24, 25},
		{"end past 24", 9, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "user-a", ScheduleInput{TaskID: task.ID, Date: "2026-03-02", StartHour: tc.start, EndHour: tc.end})
			if !errors.Is(err, ErrInvalidTimeRange) {
				t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
			}
		})
	}
}

func TestScheduleService_CreateRejectsForeignTask(t *testing.T) {
	svc, taskSvc, _ := scheduleFixture(t)
	ctx := context.Background()

	task, err := taskSvc.Create(ctx, "user-a", TaskInput{Title: "mine", DurationMinutes: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Create(ctx, "user-b", ScheduleInput{TaskID: task.ID, Date: "2026-03-02", StartHour: 9, EndHour: 10})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("scheduling someone else's task must be not-found, got %v", err)
	}
}

func TestScheduleService_ListInvertedRangeRejectedBeforeQuery(t *testing.T) {
	svc, _, schedules := scheduleFixture(t)

	_, err := svc.List(context.Background(), "user-a", "2026-03-10", "2026-03-02")
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if schedules.listCalls != 0 {
		t.Fatal("store must not be queried for an inverted range")
	}
}

func TestScheduleService_ListMalformedDates(t *testing.T) {
	svc, _, _ := scheduleFixture(t)

	for _, tc := range [][2]string{
		{"03-02-2026", "2026-03-10"},
		{"2026-03-02", "not-a-date"},
	} {
		if _, err := svc.List(context.Background(), "user-a", tc[0], tc[1]); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %v, got %v", tc, err)
		}
	}
}

func TestScheduleService_ListOrderedAndInclusive(t *testing.T) {
	svc, taskSvc, _ := scheduleFixture(t)
	ctx := context.Background()

	task, err := taskSvc.Create(ctx, "user-a", TaskInput{Title: "work", DurationMinutes: 60, Color: "blue"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// insert out of order across the range boundaries
	placements := []struct {
		date       string
		start, end int
	}{
		{"2026-03-04", 9, 10},
		{"2026-03-02", 14, 15},
		{"2026-03-02", 8, 9},
		{"2026-03-01", 8, 9},  // before range
		{"2026-03-05", 8, 9},  // after range
	}
	for _, p := range placements {
		if _, err := svc.Create(ctx, "user-a", ScheduleInput{TaskID: task.ID, Date: p.date, StartHour: p.start, EndHour: p.end}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	items, err := svc.List(ctx, "user-a", "2026-03-02", "2026-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 placements in range, got %d", len(items))
	}
	if items[0].Date != "2026-03-02" || items[0].StartTime != "08:00" {
		t.Fatalf("wrong first item: %s %s", items[0].Date, items[0].StartTime)
	}
	if items[1].StartTime != "14:00" || items[2].Date != "2026-03-04" {
		t.Fatal("expected date-then-start ordering")
	}
	if items[0].TaskTitle != "work" || items[0].TaskColor != "blue" {
		t.Fatalf("task display fields not hydrated: %+v", items[0])
	}
}

func TestScheduleService_DeleteIdempotentNotFound(t *testing.T) {
	svc, taskSvc, _ := scheduleFixture(t)
	ctx := context.Background()

	task, err := taskSvc.Create(ctx, "user-a", TaskInput{Title: "work", DurationMinutes: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := svc.Create(ctx, "user-a", ScheduleInput{TaskID: task.ID, Date: "2026-03-02", StartHour: 9, EndHour: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(ctx, "user-a", s.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.Delete(ctx, "user-a", s.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

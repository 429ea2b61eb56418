package entity

import "time"

// ScheduledTask is a placement of a Task onto a specific date and time range.
// Date is YYYY-MM-DD; StartTime/EndTime are HH:MM within that single day.
type ScheduledTask struct {
	ID        string
	UserID    string
	TaskID    string
	Date      string
	StartTime string
	EndTime   string
	CreatedAt time.Time

	// Task display fields, populated by the list join so the calendar can
	// render placements without a second round trip.
	TaskTitle           string
	TaskColor           string
	TaskCategory        string
	TaskDurationMinutes int
}

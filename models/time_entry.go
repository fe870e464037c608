package models

import (
	"time"

	"minijob/timesheet"
)

// TimeEntry is one logged shift. Hours worked are never stored; they are
// recomputed from start, end and break so the three can't drift apart.
type TimeEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Date         time.Time `gorm:"not null;type:date" json:"date"`
	StartTime    string    `gorm:"not null;size:8" json:"start_time"`
	EndTime      string    `gorm:"not null;size:8" json:"end_time"`
	BreakMinutes int       `gorm:"not null;default:0" json:"break_minutes"`
	WorkingPlace string    `gorm:"size:255" json:"working_place"`
}

// HoursWorked returns the entry's net hours, a pure function of the
// stored start/end/break fields. Value receiver so templates can call
// it on ranged entries.
func (e TimeEntry) HoursWorked() float64 {
	return timesheet.ShiftHours(e.StartTime, e.EndTime, e.BreakMinutes)
}

// Worked projects entries into the shape the aggregation works on.
func Worked(entries []TimeEntry) []timesheet.WorkedEntry {
	worked := make([]timesheet.WorkedEntry, len(entries))
	for i := range entries {
		worked[i] = timesheet.WorkedEntry{
			Date:  entries[i].Date,
			Hours: entries[i].HoursWorked(),
		}
	}
	return worked
}

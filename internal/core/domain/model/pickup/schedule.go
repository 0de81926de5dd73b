package pickup

import (
	"errors"
	"strings"
	"time"

	"ewaste/internal/pkg/errs"
	"ewaste/internal/pkg/guard"
)

// ErrScheduleIsNotConstructed is returned when a Schedule was not created
// through the NewSchedule factory method.
var ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule constructor")

// Schedule is the requested collection slot: a calendar date plus a
// free-form time-of-day string (e.g. "09:00-12:00", "afternoon"). The
// time-of-day is display data for the agent; only the date participates in
// overdue detection.
type Schedule struct {
	date      time.Time
	timeOfDay string

	guard guard.ConstructorGuard
}

// NewSchedule creates a collection slot. The date must be set and the
// time-of-day non-empty.
func NewSchedule(date time.Time, timeOfDay string) (Schedule, error) {
	if date.IsZero() {
		return Schedule{}, errs.NewValueIsRequiredError("scheduledDate")
	}
	if strings.TrimSpace(timeOfDay) == "" {
		return Schedule{}, errs.NewValueIsRequiredError("scheduledTime")
	}

	return Schedule{
		date:      date.UTC(),
		timeOfDay: timeOfDay,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the schedule was created via NewSchedule.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// Date returns the requested collection date (UTC).
func (s Schedule) Date() time.Time {
	return s.date
}

// TimeOfDay returns the requested time-of-day string.
func (s Schedule) TimeOfDay() string {
	return s.timeOfDay
}

// IsOverdue reports whether the scheduled date lies wholly in the past
// relative to now. The comparison is at day granularity: a pickup scheduled
// for today is not overdue.
func (s Schedule) IsOverdue(now time.Time) bool {
	y, m, d := now.UTC().Date()
	startOfToday := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return s.date.Before(startOfToday)
}

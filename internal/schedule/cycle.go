// Package schedule maps calendar dates onto a plan's repeating week cycle and
// selects the plan exercises due on a given day. Everything here is pure:
// callers pass the reference date explicitly.
package schedule

import (
	"errors"
	"time"
)

var (
	// ErrNotStarted is returned when the target date precedes the plan start.
	// It is a resolved state, not a failure.
	ErrNotStarted       = errors.New("plan has not started yet")
	ErrInvalidWeekCycle = errors.New("week cycle must be at least 1")
)

// Slot identifies a position in a plan's cycle.
type Slot struct {
	DayOfWeek   int `json:"dayOfWeek"`   // 1 (Mon) - 7 (Sun)
	WeekInCycle int `json:"weekInCycle"` // 1..weekCycle
}

// Resolve returns the slot of target within a plan that started on startDate
// and repeats every weekCycle weeks. Day-of-week is the calendar weekday of
// target; week-in-cycle counts whole weeks elapsed since startDate.
//
// startDate and target are compared by calendar date, each in its own location.
func Resolve(startDate time.Time, weekCycle int, target time.Time) (Slot, error) {
	if weekCycle < 1 {
		return Slot{}, ErrInvalidWeekCycle
	}

	daysSinceStart := DaysBetween(startDate, target)
	if daysSinceStart < 0 {
		return Slot{}, ErrNotStarted
	}

	weeksSinceStart := daysSinceStart / 7
	return Slot{
		DayOfWeek:   Weekday(target),
		WeekInCycle: weeksSinceStart%weekCycle + 1,
	}, nil
}

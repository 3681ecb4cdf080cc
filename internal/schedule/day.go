package schedule

import (
	"errors"
	"fmt"
	"time"
)

// DayLayout is the format of ledger day keys.
const DayLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid calendar date, expected YYYY-MM-DD")

// StartOfDay returns local midnight of t in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CalendarDate keeps only the calendar date of t, expressed as midnight UTC.
// Stored anchor dates (plan start dates) use this form so that reading them
// back in any location yields the same calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey formats the calendar date of t in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD day key as local midnight in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(DayLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return day, nil
}

// DaysBetween counts calendar days from the date of `from` to the date of
// `to`, each read in its own location. The result is negative when `to`
// falls before `from`. DST transitions never change the count.
func DaysBetween(from, to time.Time) int {
	a := CalendarDate(from)
	b := CalendarDate(to)
	return int(b.Sub(a).Hours() / 24)
}

// AddDays moves t by n calendar days and truncates it to local midnight.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}

// Weekday maps t's weekday to 1 (Monday) .. 7 (Sunday).
func Weekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// WeekBounds returns local midnight of the Monday and of the Sunday of the
// week containing t.
func WeekBounds(t time.Time) (monday, sunday time.Time) {
	monday = AddDays(t, 1-Weekday(t))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

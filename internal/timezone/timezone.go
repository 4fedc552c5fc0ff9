package timezone

import (
	"errors"
	"time"
)

const DefaultTimezone = "UTC"

const DayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid date")

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// CalendarDay drops the time of day, keeping t's calendar date as UTC midnight.
// Stored days always use this form so equality on a date column is exact.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Clock resolves "now" and "today" in the server timezone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(tz string) *Clock {
	return &Clock{loc: Location(tz), now: time.Now}
}

// WithNow pins the clock, for tests.
func (c *Clock) WithNow(now func() time.Time) *Clock {
	return &Clock{loc: c.loc, now: now}
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Clock) Today() time.Time {
	return CalendarDay(c.Now())
}

// ParseDay accepts YYYY-MM-DD or an RFC3339 timestamp; a timestamp is first
// moved into the server timezone before its date is taken.
func (c *Clock) ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse(DayLayout, s); err == nil {
		return CalendarDay(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return CalendarDay(t.In(c.loc)), nil
	}
	return time.Time{}, ErrInvalidDay
}

// StartOf returns midnight of day's calendar date in the server timezone.
func (c *Clock) StartOf(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

package slot

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidClockTime = errors.New("invalid time, expected HH:MM")
	ErrInvalidRange     = errors.New("end time must be after start time")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	minutes int
}

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}, nil
}

func ClockTimeFromMinutes(minutes int) (ClockTime, error) {
	if minutes < 0 || minutes >= 24*60 {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: minutes}, nil
}

func (c ClockTime) Minutes() int {
	return c.minutes
}

func (c ClockTime) Before(other ClockTime) bool {
	return c.minutes < other.minutes
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}

// ParseDate parses a calendar day and normalizes it to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type DateRange struct {
	start *time.Time
	end   *time.Time
}

// NewDateRange accepts empty bounds; both empty means unbounded.
func NewDateRange(start, end string) (DateRange, error) {
	var r DateRange
	if start != "" {
		d, err := ParseDate(start)
		if err != nil {
			return DateRange{}, err
		}
		r.start = &d
	}
	if end != "" {
		d, err := ParseDate(end)
		if err != nil {
			return DateRange{}, err
		}
		r.end = &d
	}
	if r.start != nil && r.end != nil && r.start.After(*r.end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return r, nil
}

func (r DateRange) Start() *time.Time { return r.start }
func (r DateRange) End() *time.Time   { return r.end }
func (r DateRange) IsUnbounded() bool { return r.start == nil && r.end == nil }

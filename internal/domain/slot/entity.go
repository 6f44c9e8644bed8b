package slot

import (
	"time"

	"github.com/google/uuid"
)

type TimeSlot struct {
	id        uuid.UUID
	date      time.Time
	start     ClockTime
	end       ClockTime
	available bool
	createdAt time.Time
	updatedAt time.Time
}

// NewTimeSlot creates an available slot. Only the booking flow flips availability afterwards.
func NewTimeSlot(date time.Time, start, end ClockTime) (*TimeSlot, error) {
	if !start.Before(end) {
		return nil, ErrInvalidRange
	}
	return &TimeSlot{
		id:        uuid.New(),
		date:      NormalizeDate(date),
		start:     start,
		end:       end,
		available: true,
	}, nil
}

// NewTimeSlotFromStrings is the entry point for admin input.
func NewTimeSlotFromStrings(date, start, end string) (*TimeSlot, error) {
	d, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	s, err := ParseClockTime(start)
	if err != nil {
		return nil, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return nil, err
	}
	return NewTimeSlot(d, s, e)
}

func ReconstructTimeSlot(
	id uuid.UUID,
	date time.Time,
	start, end ClockTime,
	available bool,
	createdAt, updatedAt time.Time,
) *TimeSlot {
	return &TimeSlot{
		id:        id,
		date:      NormalizeDate(date),
		start:     start,
		end:       end,
		available: available,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *TimeSlot) Duration() time.Duration {
	return time.Duration(s.end.Minutes()-s.start.Minutes()) * time.Minute
}

// Fits reports whether a service of the given length fits inside the slot.
func (s *TimeSlot) Fits(durationMinutes int) bool {
	return s.Duration() >= time.Duration(durationMinutes)*time.Minute
}

func (s *TimeSlot) ID() uuid.UUID        { return s.id }
func (s *TimeSlot) Date() time.Time      { return s.date }
func (s *TimeSlot) Start() ClockTime     { return s.start }
func (s *TimeSlot) End() ClockTime       { return s.end }
func (s *TimeSlot) IsAvailable() bool    { return s.available }
func (s *TimeSlot) CreatedAt() time.Time { return s.createdAt }
func (s *TimeSlot) UpdatedAt() time.Time { return s.updatedAt }

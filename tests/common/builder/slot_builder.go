//go:build unit || e2e

package builder

import (
	"time"

	"slot-booking/internal/domain/slot"
	reqdto "slot-booking/internal/handler/dto/request"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID        uuid.UUID
	Date      string
	StartTime string
	EndTime   string
	Available bool
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:        uuid.New(),
		Date:      "2030-01-15",
		StartTime: "10:00",
		EndTime:   "11:00",
		Available: true,
	}
}

func (s *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *SlotBuilder) BuildDomain() (*slot.TimeSlot, error) {
	return slot.NewTimeSlotFromStrings(s.Date, s.StartTime, s.EndTime)
}

// BuildStored returns the slot as loaded from storage, keeping ID and availability.
func (s *SlotBuilder) BuildStored() *slot.TimeSlot {
	date, _ := slot.ParseDate(s.Date)
	start, _ := slot.ParseClockTime(s.StartTime)
	end, _ := slot.ParseClockTime(s.EndTime)
	now := time.Now()
	return slot.ReconstructTimeSlot(s.ID, date, start, end, s.Available, now, now)
}

func (s *SlotBuilder) BuildRequest() reqdto.CreateSlotRequest {
	return reqdto.CreateSlotRequest{
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func (s *SlotBuilder) BuildSnapshot() *shared.SlotSnapshot {
	date, _ := slot.ParseDate(s.Date)
	start, _ := slot.ParseClockTime(s.StartTime)
	end, _ := slot.ParseClockTime(s.EndTime)
	return &shared.SlotSnapshot{
		ID:           s.ID,
		Date:         date,
		StartMinutes: start.Minutes(),
		EndMinutes:   end.Minutes(),
		Available:    s.Available,
	}
}

func (s *SlotBuilder) BuildView() *queries.SlotView {
	now := time.Now()
	return &queries.SlotView{
		ID:        s.ID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Available: s.Available,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *SlotBuilder) BuildInfra() sqlc.TimeSlots {
	date, _ := slot.ParseDate(s.Date)
	start, _ := slot.ParseClockTime(s.StartTime)
	end, _ := slot.ParseClockTime(s.EndTime)
	now := time.Now()
	return sqlc.TimeSlots{
		ID:        s.ID,
		Date:      pgconv.DateToPgtype(date),
		StartTime: pgconv.MinutesToPgtime(start.Minutes()),
		EndTime:   pgconv.MinutesToPgtime(end.Minutes()),
		Available: s.Available,
		CreatedAt: pgconv.TimeToPgtype(now),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
}

// Fluent builder methods
func (s *SlotBuilder) WithID(id uuid.UUID) *SlotBuilder {
	s.ID = id
	return s
}

func (s *SlotBuilder) WithDate(date string) *SlotBuilder {
	s.Date = date
	return s
}

func (s *SlotBuilder) WithTimes(start, end string) *SlotBuilder {
	s.StartTime = start
	s.EndTime = end
	return s
}

func (s *SlotBuilder) AsTaken() *SlotBuilder {
	s.Available = false
	return s
}

package converter

import (
	"slot-booking/internal/domain/slot"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
)

func SlotToCreateParams(s *slot.TimeSlot) sqlc.CreateTimeSlotParams {
	return sqlc.CreateTimeSlotParams{
		ID:        s.ID(),
		Date:      pgconv.DateToPgtype(s.Date()),
		StartTime: pgconv.MinutesToPgtime(s.Start().Minutes()),
		EndTime:   pgconv.MinutesToPgtime(s.End().Minutes()),
		Available: s.IsAvailable(),
	}
}

func SlotFromRow(row sqlc.TimeSlots) (*slot.TimeSlot, error) {
	start, err := slot.ClockTimeFromMinutes(pgconv.MinutesFromPgtime(row.StartTime))
	if err != nil {
		return nil, err
	}
	end, err := slot.ClockTimeFromMinutes(pgconv.MinutesFromPgtime(row.EndTime))
	if err != nil {
		return nil, err
	}
	return slot.ReconstructTimeSlot(
		row.ID,
		pgconv.DateFromPgtype(row.Date),
		start,
		end,
		row.Available,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

package request

import (
	"slot-booking/internal/domain/slot"
)

const MaxBatchSlots = 200

type CreateSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (r CreateSlotRequest) ToDomain() (*slot.TimeSlot, error) {
	return slot.NewTimeSlotFromStrings(r.Date, r.StartTime, r.EndTime)
}

// Entries are not validated here: each one succeeds or fails on its own.
type CreateSlotsBatchRequest struct {
	Slots []CreateSlotRequest `json:"slots" binding:"required,min=1,max=200"`
}

type ListSlotsQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (q ListSlotsQuery) ToDomain() (slot.DateRange, error) {
	return slot.NewDateRange(q.StartDate, q.EndDate)
}

type AvailableSlotsQuery struct {
	Date      string  `form:"date" binding:"required"`
	ServiceID *string `form:"service_id"`
}

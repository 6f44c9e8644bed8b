package request

import (
	"slot-booking/internal/domain/appointment"
	"slot-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	SlotID    uuid.UUID `json:"slot_id" binding:"required"`
	Notes     *string   `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

func (r CreateAppointmentRequest) ToDomain(userID uuid.UUID) (*appointment.Appointment, error) {
	notes, err := appointment.NewNotes(patch.Coalesce(r.Notes, ""))
	if err != nil {
		return nil, err
	}
	return appointment.NewAppointment(userID, r.ServiceID, r.SlotID, notes)
}

type UpdateStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	AdminNotes *string `json:"admin_notes,omitempty" binding:"omitempty,max=1000"`
}

func (r UpdateStatusRequest) ToDomain() (appointment.Status, error) {
	return appointment.ParseStatus(r.Status)
}

type RescheduleRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
}

type ListAppointmentsQuery struct {
	Status *string `form:"status"`
	After  string  `form:"after"`
	Limit  int     `form:"limit" binding:"omitempty,min=1,max=100"`
}

// NormalizedStatus validates the optional status filter.
func (q ListAppointmentsQuery) NormalizedStatus() (*string, error) {
	if q.Status == nil || *q.Status == "" {
		return nil, nil
	}
	st, err := appointment.ParseStatus(*q.Status)
	if err != nil {
		return nil, err
	}
	s := st.String()
	return &s, nil
}

type CalendarQuery struct {
	Year  int `form:"year" binding:"omitempty,min=2000,max=2100"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

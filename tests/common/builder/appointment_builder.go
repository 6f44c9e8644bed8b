//go:build unit || e2e

package builder

import (
	"time"

	"slot-booking/internal/domain/appointment"
	reqdto "slot-booking/internal/handler/dto/request"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ServiceID uuid.UUID
	SlotID    uuid.UUID
	Status    appointment.Status
	Notes     string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ServiceID: uuid.New(),
		SlotID:    uuid.New(),
		Status:    appointment.StatusPending,
		Notes:     "first visit",
	}
}

func (a *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	notes, err := appointment.NewNotes(a.Notes)
	if err != nil {
		return nil, err
	}
	return appointment.NewAppointment(a.UserID, a.ServiceID, a.SlotID, notes)
}

// BuildStored returns the appointment as loaded from storage in its current status.
func (a *AppointmentBuilder) BuildStored() *appointment.Appointment {
	notes, _ := appointment.NewNotes(a.Notes)
	now := time.Now()
	return appointment.ReconstructAppointment(a.ID, a.UserID, a.ServiceID, a.SlotID, a.Status, notes, nil, now, now)
}

func (a *AppointmentBuilder) BuildRequest() reqdto.CreateAppointmentRequest {
	var notes *string
	if a.Notes != "" {
		n := a.Notes
		notes = &n
	}
	return reqdto.CreateAppointmentRequest{
		ServiceID: a.ServiceID,
		SlotID:    a.SlotID,
		Notes:     notes,
	}
}

func (a *AppointmentBuilder) BuildView() *queries.AppointmentView {
	now := time.Now()
	var notes *string
	if a.Notes != "" {
		n := a.Notes
		notes = &n
	}
	view := &queries.AppointmentView{
		ID:        a.ID,
		Status:    a.Status.String(),
		Notes:     notes,
		Client:    queries.ClientSummary{ID: a.UserID, Name: "Test User", Email: "test@example.com"},
		Service:   queries.ServiceSummary{ID: a.ServiceID, Name: "Gel Manicure", PriceCents: 4500, DurationMinutes: 60},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if a.SlotID != uuid.Nil {
		view.Slot = &queries.SlotSummary{ID: a.SlotID, Date: "2030-01-15", StartTime: "10:00", EndTime: "11:00"}
	}
	return view
}

func (a *AppointmentBuilder) BuildInfra() sqlc.Appointments {
	now := time.Now()
	return sqlc.Appointments{
		ID:        a.ID,
		UserID:    a.UserID,
		ServiceID: a.ServiceID,
		SlotID:    pgconv.UUIDOrNullToPgtype(a.SlotID),
		Status:    a.Status.String(),
		Notes:     pgconv.StringToPgtype(a.Notes),
		CreatedAt: pgconv.TimeToPgtype(now),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
}

// Fluent builder methods
func (a *AppointmentBuilder) WithID(id uuid.UUID) *AppointmentBuilder {
	a.ID = id
	return a
}

func (a *AppointmentBuilder) WithUserID(id uuid.UUID) *AppointmentBuilder {
	a.UserID = id
	return a
}

func (a *AppointmentBuilder) WithServiceID(id uuid.UUID) *AppointmentBuilder {
	a.ServiceID = id
	return a
}

func (a *AppointmentBuilder) WithSlotID(id uuid.UUID) *AppointmentBuilder {
	a.SlotID = id
	return a
}

func (a *AppointmentBuilder) WithStatus(status appointment.Status) *AppointmentBuilder {
	a.Status = status
	return a
}

func (a *AppointmentBuilder) WithNotes(notes string) *AppointmentBuilder {
	a.Notes = notes
	return a
}

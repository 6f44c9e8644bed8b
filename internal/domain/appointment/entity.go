package appointment

import (
	"time"

	"slot-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errs.Mark(errs.New("invalid appointment status"), errs.ErrValidation)
	ErrNotesTooLong      = errs.Mark(errs.New("notes must be at most 500 characters"), errs.ErrValidation)
	ErrMissingReference  = errs.Mark(errs.New("client, service and slot are required"), errs.ErrValidation)
	ErrSameSlot          = errs.Mark(errs.New("appointment already holds this slot"), errs.ErrValidation)
	ErrInvalidTransition = errs.Mark(errs.New("status transition not allowed"), errs.ErrInvalidTransition)
	ErrAlreadyFinal      = errs.Mark(errs.New("appointment is already completed or cancelled"), errs.ErrInvalidTransition)
)

type Appointment struct {
	id         uuid.UUID
	userID     uuid.UUID
	serviceID  uuid.UUID
	slotID     uuid.UUID
	status     Status
	notes      Notes
	adminNotes *string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewAppointment is the only way to obtain a pending appointment.
func NewAppointment(userID, serviceID, slotID uuid.UUID, notes Notes) (*Appointment, error) {
	if userID == uuid.Nil || serviceID == uuid.Nil || slotID == uuid.Nil {
		return nil, ErrMissingReference
	}
	return &Appointment{
		id:        uuid.New(),
		userID:    userID,
		serviceID: serviceID,
		slotID:    slotID,
		status:    StatusPending,
		notes:     notes,
	}, nil
}

// ReconstructAppointment rebuilds a stored appointment. slotID is uuid.Nil when the
// slot of a terminal appointment has been deleted.
func ReconstructAppointment(
	id, userID, serviceID, slotID uuid.UUID,
	status Status,
	notes Notes,
	adminNotes *string,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:         id,
		userID:     userID,
		serviceID:  serviceID,
		slotID:     slotID,
		status:     status,
		notes:      notes,
		adminNotes: adminNotes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Appointment) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !a.status.CanTransitionTo(next) {
		return errs.Wrap(ErrInvalidTransition, string(a.status)+" -> "+string(next))
	}
	a.status = next
	return nil
}

func (a *Appointment) Cancel() error {
	if a.status.IsTerminal() {
		return ErrAlreadyFinal
	}
	return a.ChangeStatus(StatusCancelled)
}

// Reschedule repoints the appointment; the status is left unchanged.
func (a *Appointment) Reschedule(newSlotID uuid.UUID) error {
	if a.status.IsTerminal() {
		return ErrAlreadyFinal
	}
	if newSlotID == uuid.Nil {
		return ErrMissingReference
	}
	if newSlotID == a.slotID {
		return ErrSameSlot
	}
	a.slotID = newSlotID
	return nil
}

func (a *Appointment) SetAdminNotes(note string) {
	if note == "" {
		return
	}
	a.adminNotes = &note
}

// HoldsSlot reports whether the appointment keeps its slot claimed.
func (a *Appointment) HoldsSlot() bool {
	return !a.status.IsTerminal() && a.slotID != uuid.Nil
}

func (a *Appointment) IsOwnedBy(userID uuid.UUID) bool {
	return a.userID == userID
}

func (a *Appointment) ID() uuid.UUID        { return a.id }
func (a *Appointment) UserID() uuid.UUID    { return a.userID }
func (a *Appointment) ServiceID() uuid.UUID { return a.serviceID }
func (a *Appointment) SlotID() uuid.UUID    { return a.slotID }
func (a *Appointment) Status() Status       { return a.status }
func (a *Appointment) Notes() Notes         { return a.notes }
func (a *Appointment) AdminNotes() *string  { return a.adminNotes }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time { return a.updatedAt }

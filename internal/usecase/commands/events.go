package commands

import (
	"context"
	"encoding/json"
	"time"

	"slot-booking/internal/domain/appointment"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Event types double as Kafka topic names.
const (
	EventAppointmentCreated       = "appointment.created"
	EventAppointmentCancelled     = "appointment.cancelled"
	EventAppointmentRescheduled   = "appointment.rescheduled"
	EventAppointmentDeleted       = "appointment.deleted"
	EventAppointmentStatusChanged = "appointment.status_changed"
)

type AppointmentEvent struct {
	AppointmentID  uuid.UUID  `json:"appointment_id"`
	UserID         uuid.UUID  `json:"user_id"`
	ServiceID      uuid.UUID  `json:"service_id"`
	SlotID         *uuid.UUID `json:"slot_id,omitempty"`
	PreviousSlotID *uuid.UUID `json:"previous_slot_id,omitempty"`
	Status         string     `json:"status"`
	PreviousStatus string     `json:"previous_status,omitempty"`
	ActorID        uuid.UUID  `json:"actor_id"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

func newAppointmentEvent(a *appointment.Appointment, actor shared.Actor, at time.Time) AppointmentEvent {
	ev := AppointmentEvent{
		AppointmentID: a.ID(),
		UserID:        a.UserID(),
		ServiceID:     a.ServiceID(),
		Status:        a.Status().String(),
		ActorID:       actor.ID,
		OccurredAt:    at.UTC(),
	}
	if a.SlotID() != uuid.Nil {
		id := a.SlotID()
		ev.SlotID = &id
	}
	return ev
}

func appendEvent(ctx context.Context, tx shared.Tx, eventType string, ev AppointmentEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal appointment event")
	}
	return tx.Outbox().Append(ctx, tx.DB(), shared.OutboxMessage{
		AggregateID: ev.AppointmentID,
		EventType:   eventType,
		Payload:     payload,
	})
}

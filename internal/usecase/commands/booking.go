package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"slot-booking/internal/domain/appointment"
	reqdto "slot-booking/internal/handler/dto/request"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/telemetry"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	EndpointCreateAppointment = "POST /api/appointments"
	activeSlotConstraint      = "appointments_active_slot_key"
)

type CreateAppointmentResult struct {
	Appointment *queries.AppointmentView
	IsReplayed  bool
}

type BookingCommands interface {
	CreateAppointment(ctx context.Context, actor shared.Actor, req reqdto.CreateAppointmentRequest, idempotencyKey *uuid.UUID) (*CreateAppointmentResult, error)
	CancelAppointment(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID) (*queries.AppointmentView, error)
	RescheduleAppointment(ctx context.Context, actor shared.Actor, appointmentID, newSlotID uuid.UUID) (*queries.AppointmentView, error)
	DeleteAppointment(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID) error
	UpdateStatus(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, req reqdto.UpdateStatusRequest) (*queries.AppointmentView, error)
}

type bookingCommandsImpl struct {
	uow                shared.UnitOfWork
	appointmentQueries queries.AppointmentQueries
	clock              clock.Clock
	idempotencyTTL     time.Duration
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	appointmentQueries queries.AppointmentQueries,
	clk clock.Clock,
	idempotencyTTL time.Duration,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:                uow,
		appointmentQueries: appointmentQueries,
		clock:              clk,
		idempotencyTTL:     idempotencyTTL,
	}
}

func (b *bookingCommandsImpl) CreateAppointment(
	ctx context.Context,
	actor shared.Actor,
	req reqdto.CreateAppointmentRequest,
	idempotencyKey *uuid.UUID,
) (result *CreateAppointmentResult, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.CreateAppointment",
		attribute.String("slot.id", req.SlotID.String()),
		attribute.String("service.id", req.ServiceID.String()),
	)
	defer func() { endSpan(span, err) }()

	if !actor.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	appt, err := req.ToDomain(actor.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	requestHash, err := hashRequest(req)
	if err != nil {
		return nil, err
	}

	var (
		appointmentID uuid.UUID
		replayed      bool
	)
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayed = false
		if idempotencyKey != nil {
			existingID, derr := b.checkIdempotency(ctx, tx, *idempotencyKey, actor.ID, requestHash)
			if derr != nil {
				return derr
			}
			if existingID != nil {
				appointmentID = *existingID
				replayed = true
				return nil
			}
		}

		id, derr := b.claimAndInsert(ctx, tx, appt)
		if derr != nil {
			return derr
		}
		appointmentID = id

		if idempotencyKey != nil {
			if derr = tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, actor.ID, id); derr != nil {
				return derr
			}
		}

		return appendEvent(ctx, tx, EventAppointmentCreated, newAppointmentEvent(appt, actor, b.clock.Now()))
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: the view resolves client, service and slot for display
	view, err := b.appointmentQueries.GetByIDSystem(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	return &CreateAppointmentResult{
		Appointment: view,
		IsReplayed:  replayed,
	}, nil
}

// checkIdempotency returns the appointment of an earlier identical request, or
// nil when the key was newly reserved by this transaction.
func (b *bookingCommandsImpl) checkIdempotency(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
) (*uuid.UUID, error) {
	expiresAt := b.clock.Now().Add(b.idempotencyTTL)
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, EndpointCreateAppointment, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Idempotency().Find(ctx, tx.DB(), key, userID)
	if err != nil {
		return nil, err
	}
	if !existing.Matches(EndpointCreateAppointment, requestHash) {
		return nil, ErrIdempotencyMismatch
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultAppointmentID == nil {
			return nil, errs.New("completed idempotency key has no appointment")
		}
		return existing.ResultAppointmentID, nil
	default:
		return nil, ErrIdempotencyInProgress
	}
}

// claimAndInsert validates the references, wins the slot with a compare-and-set
// and inserts the pending appointment. The caller's transaction makes both
// writes visible together or not at all.
func (b *bookingCommandsImpl) claimAndInsert(ctx context.Context, tx shared.Tx, appt *appointment.Appointment) (uuid.UUID, error) {
	svc, err := tx.Reads().ServiceByID(ctx, appt.ServiceID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrServiceUnavailable
		}
		return uuid.Nil, err
	}
	if !svc.Active {
		return uuid.Nil, ErrServiceUnavailable
	}

	s, err := tx.Reads().SlotByID(ctx, appt.SlotID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrSlotUnavailable
		}
		return uuid.Nil, err
	}
	if !s.Available {
		return uuid.Nil, ErrSlotUnavailable
	}

	claimed, err := tx.Slots().Claim(ctx, tx.DB(), appt.SlotID())
	if err != nil {
		return uuid.Nil, err
	}
	if !claimed {
		return uuid.Nil, ErrSlotUnavailable
	}

	id, err := tx.Appointments().Create(ctx, tx.DB(), appt)
	if err != nil {
		if isActiveSlotViolation(err) {
			return uuid.Nil, ErrSlotUnavailable
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (b *bookingCommandsImpl) CancelAppointment(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID) (view *queries.AppointmentView, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.CancelAppointment", attribute.String("appointment.id", appointmentID.String()))
	defer func() { endSpan(span, err) }()

	if !actor.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, derr := lockAppointment(ctx, tx, appointmentID)
		if derr != nil {
			return derr
		}
		if !actor.CanAccess(appt.UserID()) {
			return ErrNotAppointmentOwner
		}
		if derr = b.cancelLocked(ctx, tx, appt, ""); derr != nil {
			return derr
		}
		return appendEvent(ctx, tx, EventAppointmentCancelled, newAppointmentEvent(appt, actor, b.clock.Now()))
	})
	if err != nil {
		return nil, err
	}

	return b.appointmentQueries.GetByIDSystem(ctx, appointmentID)
}

// cancelLocked moves a locked appointment to cancelled and hands its slot back.
func (b *bookingCommandsImpl) cancelLocked(ctx context.Context, tx shared.Tx, appt *appointment.Appointment, adminNote string) error {
	from := appt.Status()
	if err := appt.Cancel(); err != nil {
		return err
	}
	appt.SetAdminNotes(adminNote)

	if err := updateStatus(ctx, tx, appt, from); err != nil {
		return err
	}
	return releaseSlot(ctx, tx, appt.SlotID())
}

func (b *bookingCommandsImpl) RescheduleAppointment(
	ctx context.Context,
	actor shared.Actor,
	appointmentID, newSlotID uuid.UUID,
) (view *queries.AppointmentView, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.RescheduleAppointment",
		attribute.String("appointment.id", appointmentID.String()),
		attribute.String("slot.id", newSlotID.String()),
	)
	defer func() { endSpan(span, err) }()

	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, derr := lockAppointment(ctx, tx, appointmentID)
		if derr != nil {
			return derr
		}

		oldSlotID := appt.SlotID()
		if derr = appt.Reschedule(newSlotID); derr != nil {
			return derr
		}

		target, derr := tx.Slots().LockByID(ctx, tx.DB(), newSlotID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return derr
		}
		if !target.IsAvailable() {
			return ErrSlotUnavailable
		}

		claimed, derr := tx.Slots().Claim(ctx, tx.DB(), newSlotID)
		if derr != nil {
			return derr
		}
		if !claimed {
			return ErrSlotUnavailable
		}

		if derr = tx.Appointments().UpdateSlot(ctx, tx.DB(), appt.ID(), oldSlotID, newSlotID); derr != nil {
			switch {
			case isActiveSlotViolation(derr):
				return ErrSlotUnavailable
			case infra.IsKind(derr, infra.KindConflict):
				return ErrConcurrentUpdate
			}
			return derr
		}

		if derr = releaseSlot(ctx, tx, oldSlotID); derr != nil {
			return derr
		}

		ev := newAppointmentEvent(appt, actor, b.clock.Now())
		ev.PreviousSlotID = &oldSlotID
		return appendEvent(ctx, tx, EventAppointmentRescheduled, ev)
	})
	if err != nil {
		return nil, err
	}

	return b.appointmentQueries.GetByIDSystem(ctx, appointmentID)
}

func (b *bookingCommandsImpl) DeleteAppointment(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "BookingCommands.DeleteAppointment", attribute.String("appointment.id", appointmentID.String()))
	defer func() { endSpan(span, err) }()

	if !actor.IsAuthenticated() {
		return ErrUnauthenticated
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, derr := lockAppointment(ctx, tx, appointmentID)
		if derr != nil {
			return derr
		}
		if !actor.CanAccess(appt.UserID()) {
			return ErrNotAppointmentOwner
		}

		held := appt.HoldsSlot()
		if derr = tx.Appointments().Delete(ctx, tx.DB(), appt.ID()); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return derr
		}
		if held {
			if derr = releaseSlot(ctx, tx, appt.SlotID()); derr != nil {
				return derr
			}
		}

		return appendEvent(ctx, tx, EventAppointmentDeleted, newAppointmentEvent(appt, actor, b.clock.Now()))
	})
}

func (b *bookingCommandsImpl) UpdateStatus(
	ctx context.Context,
	actor shared.Actor,
	appointmentID uuid.UUID,
	req reqdto.UpdateStatusRequest,
) (view *queries.AppointmentView, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.UpdateStatus",
		attribute.String("appointment.id", appointmentID.String()),
		attribute.String("appointment.status", req.Status),
	)
	defer func() { endSpan(span, err) }()

	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	next, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	var adminNote string
	if req.AdminNotes != nil {
		adminNote = *req.AdminNotes
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, derr := lockAppointment(ctx, tx, appointmentID)
		if derr != nil {
			return derr
		}
		from := appt.Status()

		if next == appointment.StatusCancelled {
			derr = b.cancelLocked(ctx, tx, appt, adminNote)
		} else {
			derr = changeStatus(ctx, tx, appt, next, adminNote)
		}
		if derr != nil {
			return derr
		}

		ev := newAppointmentEvent(appt, actor, b.clock.Now())
		ev.PreviousStatus = from.String()
		return appendEvent(ctx, tx, EventAppointmentStatusChanged, ev)
	})
	if err != nil {
		return nil, err
	}

	return b.appointmentQueries.GetByIDSystem(ctx, appointmentID)
}

// changeStatus covers confirm and complete, which never touch slot occupancy.
func changeStatus(ctx context.Context, tx shared.Tx, appt *appointment.Appointment, next appointment.Status, adminNote string) error {
	from := appt.Status()
	if err := appt.ChangeStatus(next); err != nil {
		return err
	}
	appt.SetAdminNotes(adminNote)
	return updateStatus(ctx, tx, appt, from)
}

func lockAppointment(ctx context.Context, tx shared.Tx, id uuid.UUID) (*appointment.Appointment, error) {
	appt, err := tx.Appointments().LockByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appt, nil
}

func updateStatus(ctx context.Context, tx shared.Tx, appt *appointment.Appointment, from appointment.Status) error {
	err := tx.Appointments().UpdateStatus(ctx, tx.DB(), appt, from)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return ErrConcurrentUpdate
		}
		return err
	}
	return nil
}

// releaseSlot hands a slot back. A miss means the slot is already free, was
// deleted, or another active appointment holds it; none of these is an error.
func releaseSlot(ctx context.Context, tx shared.Tx, slotID uuid.UUID) error {
	if slotID == uuid.Nil {
		return nil
	}
	released, err := tx.Slots().Release(ctx, tx.DB(), slotID)
	if err != nil {
		return err
	}
	if !released {
		slog.WarnContext(ctx, "time slot not released", "slot_id", slotID)
	}
	return nil
}

func isActiveSlotViolation(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == activeSlotConstraint
}

func hashRequest(req reqdto.CreateAppointmentRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", errs.Wrap(err, "hash create appointment request")
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return telemetry.Tracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errs.Kind(err))
	}
	span.End()
}

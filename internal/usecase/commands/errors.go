package commands

import "slot-booking/internal/pkg/errs"

var (
	ErrUnauthenticated       = errs.Mark(errs.New("authentication required"), errs.ErrUnauthenticated)
	ErrAdminOnly             = errs.Mark(errs.New("admin role required"), errs.ErrForbidden)
	ErrNotAppointmentOwner   = errs.Mark(errs.New("only the owner or an admin may change this appointment"), errs.ErrForbidden)
	ErrAppointmentNotFound   = errs.Mark(errs.New("appointment not found"), errs.ErrNotFound)
	ErrSlotNotFound          = errs.Mark(errs.New("time slot not found"), errs.ErrNotFound)
	ErrServiceNotFound       = errs.Mark(errs.New("service not found"), errs.ErrNotFound)
	ErrServiceUnavailable    = errs.Mark(errs.New("service not found or inactive"), errs.ErrSlotUnavailable)
	ErrSlotUnavailable       = errs.Mark(errs.New("time slot is not available"), errs.ErrSlotUnavailable)
	ErrSlotHeld              = errs.Mark(errs.New("time slot is held by an active appointment"), errs.ErrConflict)
	ErrDuplicateSlot         = errs.Mark(errs.New("a time slot already starts at this date and time"), errs.ErrConflict)
	ErrServiceInUse          = errs.Mark(errs.New("service is referenced by appointments"), errs.ErrConflict)
	ErrConcurrentUpdate      = errs.Mark(errs.New("appointment changed concurrently"), errs.ErrConflict)
	ErrIdempotencyMismatch   = errs.Mark(errs.New("idempotency key reused with a different request"), errs.ErrConflict)
	ErrIdempotencyInProgress = errs.Mark(errs.New("request with this idempotency key is in progress"), errs.ErrConflict)
)

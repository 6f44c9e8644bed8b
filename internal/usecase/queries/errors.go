package queries

import "slot-booking/internal/pkg/errs"

var (
	ErrInvalidCursor       = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
	ErrAdminOnly           = errs.Mark(errs.New("admin role required"), errs.ErrForbidden)
	ErrUnauthenticated     = errs.Mark(errs.New("authentication required"), errs.ErrUnauthenticated)
	ErrAppointmentNotFound = errs.Mark(errs.New("appointment not found"), errs.ErrNotFound)
	ErrAppointmentAccess   = errs.Mark(errs.New("appointment access denied"), errs.ErrForbidden)
	ErrServiceNotFound     = errs.Mark(errs.New("service not found"), errs.ErrNotFound)
	ErrServiceUnavailable  = errs.Mark(errs.New("service not found or inactive"), errs.ErrSlotUnavailable)
	ErrInvalidPeriod       = errs.Mark(errs.New("invalid year or month"), errs.ErrValidation)
)

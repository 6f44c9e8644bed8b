package errs

// Error kinds surfaced to callers. Specific errors are marked with one of these
// so the transport layer can map them without knowing every sentinel.
var (
	ErrNotFound          = New("not found")
	ErrSlotUnavailable   = New("slot unavailable")
	ErrInvalidTransition = New("invalid transition")
	ErrUnauthenticated   = New("unauthenticated")
	ErrForbidden         = New("forbidden")
	ErrConflict          = New("conflict")
	ErrValidation        = New("validation error")
)

// Kind returns a stable identifier for the error kind, or "internal" when the
// error carries none of the known marks.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrNotFound):
		return "not_found"
	case Is(err, ErrSlotUnavailable):
		return "slot_unavailable"
	case Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case Is(err, ErrForbidden):
		return "forbidden"
	case Is(err, ErrConflict):
		return "conflict"
	case Is(err, ErrValidation):
		return "validation_error"
	default:
		return "internal"
	}
}

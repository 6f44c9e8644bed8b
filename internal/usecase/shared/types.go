package shared

import (
	"time"

	"slot-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a command or query.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

func (a Actor) IsAuthenticated() bool {
	return a.ID != uuid.Nil && a.Role.IsValid()
}

// CanAccess reports whether the actor may act on a resource owned by ownerID.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsAdmin() || (a.IsAuthenticated() && a.ID == ownerID)
}

type ServiceSnapshot struct {
	ID              uuid.UUID
	Name            string
	PriceCents      int64
	DurationMinutes int32
	Active          bool
}

type SlotSnapshot struct {
	ID           uuid.UUID
	Date         time.Time
	StartMinutes int
	EndMinutes   int
	Available    bool
}

type IdempotencyStatus string

const (
	IdempotencyStatusProcessing IdempotencyStatus = "processing"
	IdempotencyStatusCompleted  IdempotencyStatus = "completed"
)

// IdempotencyRecord is the stored outcome of a keyed request. ResultAppointmentID
// is set once Status is completed.
type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Endpoint            string
	Status              IdempotencyStatus
	RequestHash         string
	ResultAppointmentID *uuid.UUID
	ExpiresAt           time.Time
}

// Matches reports whether a replay of endpoint with requestHash is the same request.
func (r *IdempotencyRecord) Matches(endpoint, requestHash string) bool {
	return r.Endpoint == endpoint && r.RequestHash == requestHash
}

// OutboxMessage is an event appended in the same transaction as the state change it describes.
type OutboxMessage struct {
	AggregateID uuid.UUID
	EventType   string
	Payload     []byte
}

type OutboxRecord struct {
	ID          int64
	EventID     uuid.UUID
	AggregateID uuid.UUID
	EventType   string
	Payload     []byte
	Traceparent string
	Tracestate  string
	Attempts    int32
	CreatedAt   time.Time
}

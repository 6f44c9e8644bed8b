package shared

import (
	"context"
	"time"

	"slot-booking/internal/domain/appointment"
	"slot-booking/internal/domain/service"
	"slot-booking/internal/domain/slot"
	"slot-booking/internal/domain/user"
	sqlc "slot-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// UnitOfWork runs fn in one read-committed transaction. Serialization
// failures and deadlocks are retried, so fn must be safe to re-run.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Slots() SlotRepository
	Appointments() AppointmentRepository
	Services() ServiceRepository
	Users() UserRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
}

type SlotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *slot.TimeSlot) (*slot.TimeSlot, error)
	// CreateIfAbsent reports created=false when (date, start_time) is already taken.
	CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, s *slot.TimeSlot) (*slot.TimeSlot, bool, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*slot.TimeSlot, error)
	Claim(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
	Release(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
	CountActiveHolders(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment, from appointment.Status) error
	UpdateSlot(ctx context.Context, tx sqlc.DBTX, id, fromSlotID, toSlotID uuid.UUID) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ServiceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *service.Service) (*service.Service, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*service.Service, error)
	Update(ctx context.Context, tx sqlc.DBTX, s *service.Service) (*service.Service, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	// LockByID takes the row lock for a profile change.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when a live key already exists for the user.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Find(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID, appointmentID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX) (int64, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, msg OutboxMessage) error
	FetchUnpublished(ctx context.Context, tx sqlc.DBTX, limit int32) ([]OutboxRecord, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, ids []int64) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id int64, reason string) error
}

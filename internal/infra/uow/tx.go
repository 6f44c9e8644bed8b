package uow

import (
	"context"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/infra/readstore"
	"slot-booking/internal/infra/repository"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// pgTx hands out repositories bound to one pgx transaction. They are built on
// first use since most commands touch two or three of them.
type pgTx struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	slots        shared.SlotRepository
	appointments shared.AppointmentRepository
	services     shared.ServiceRepository
	users        shared.UserRepository
	idempotency  shared.IdempotencyRepository
	outbox       shared.OutboxRepository
	reads        shared.CommandReads
}

func newTx(q *sqlc.Queries, dbtx sqlc.DBTX) *pgTx {
	return &pgTx{q: q, dbtx: dbtx}
}

func lazy[T any](field *T, build func() T) T {
	if any(*field) == nil {
		*field = build()
	}
	return *field
}

func (t *pgTx) DB() sqlc.DBTX { return t.dbtx }

func (t *pgTx) Slots() shared.SlotRepository {
	return lazy(&t.slots, func() shared.SlotRepository { return repository.NewSlotRepository(t.q, t.dbtx) })
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	return lazy(&t.appointments, func() shared.AppointmentRepository { return repository.NewAppointmentRepository(t.q, t.dbtx) })
}

func (t *pgTx) Services() shared.ServiceRepository {
	return lazy(&t.services, func() shared.ServiceRepository { return repository.NewServiceRepository(t.q, t.dbtx) })
}

func (t *pgTx) Users() shared.UserRepository {
	return lazy(&t.users, func() shared.UserRepository { return repository.NewUserRepository(t.q, t.dbtx) })
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	return lazy(&t.idempotency, func() shared.IdempotencyRepository { return repository.NewIdempotencyRepository(t.q, t.dbtx) })
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	return lazy(&t.outbox, func() shared.OutboxRepository { return repository.NewOutboxRepository(t.q, t.dbtx) })
}

func (t *pgTx) Reads() shared.CommandReads {
	return lazy(&t.reads, func() shared.CommandReads {
		return &commandReads{
			services: readstore.NewServiceReadStore(t.q, t.dbtx),
			slots:    readstore.NewSlotReadStore(t.q, t.dbtx),
		}
	})
}

// commandReads gives commands the read-model lookups they validate against,
// inside the same transaction as their writes.
type commandReads struct {
	services *readstore.ServiceReadStore
	slots    *readstore.SlotReadStore
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	svc, err := r.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ServiceSnapshot{
		ID:              svc.ID,
		Name:            svc.Name,
		PriceCents:      svc.PriceCents,
		DurationMinutes: svc.DurationMinutes,
		Active:          svc.Active,
	}, nil
}

func (r *commandReads) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	view, err := r.slots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSlotSnapshot(view)
}

func toSlotSnapshot(view *queries.SlotView) (*shared.SlotSnapshot, error) {
	date, err := slot.ParseDate(view.Date)
	if err != nil {
		return nil, err
	}
	start, err := slot.ParseClockTime(view.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := slot.ParseClockTime(view.EndTime)
	if err != nil {
		return nil, err
	}
	return &shared.SlotSnapshot{
		ID:           view.ID,
		Date:         date,
		StartMinutes: start.Minutes(),
		EndMinutes:   end.Minutes(),
		Available:    view.Available,
	}, nil
}

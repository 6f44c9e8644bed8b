package repository

import (
	"context"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/infra"
	"slot-booking/internal/infra/repository/converter"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotWriteQueries interface {
	CreateTimeSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTimeSlotParams) (sqlc.TimeSlots, error)
	CreateTimeSlotIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTimeSlotIfAbsentParams) (sqlc.TimeSlots, error)
	GetTimeSlotForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.TimeSlots, error)
	ClaimTimeSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ReleaseTimeSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CountActiveAppointmentsForSlot(ctx context.Context, db sqlc.DBTX, slotID pgtype.UUID) (int64, error)
	DeleteTimeSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) Create(ctx context.Context, tx sqlc.DBTX, s *slot.TimeSlot) (*slot.TimeSlot, error) {
	row, err := r.queries.CreateTimeSlot(ctx, tx, converter.SlotToCreateParams(s))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create time slot", err)
	}
	return r.toDomain(row)
}

func (r *SlotRepository) CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, s *slot.TimeSlot) (*slot.TimeSlot, bool, error) {
	params := sqlc.CreateTimeSlotIfAbsentParams(converter.SlotToCreateParams(s))
	row, err := r.queries.CreateTimeSlotIfAbsent(ctx, tx, params)
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to create time slot", err)
	}
	created, err := r.toDomain(row)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func (r *SlotRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*slot.TimeSlot, error) {
	row, err := r.queries.GetTimeSlotForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock time slot", err)
	}
	return r.toDomain(row)
}

// Claim flips available from true to false and reports whether this call won.
func (r *SlotRepository) Claim(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.ClaimTimeSlot(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim time slot", err)
	}
	return n == 1, nil
}

// Release makes the slot available again unless an active appointment still references it.
func (r *SlotRepository) Release(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.ReleaseTimeSlot(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to release time slot", err)
	}
	return n == 1, nil
}

func (r *SlotRepository) CountActiveHolders(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error) {
	n, err := r.queries.CountActiveAppointmentsForSlot(ctx, tx, pgconv.UUIDToPgtype(id))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count slot holders", err)
	}
	return n, nil
}

func (r *SlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteTimeSlot(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete time slot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("time slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) toDomain(row sqlc.TimeSlots) (*slot.TimeSlot, error) {
	s, err := converter.SlotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid time slot row", err, infra.KindDBFailure)
	}
	return s, nil
}

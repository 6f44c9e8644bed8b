package readstore

import (
	"context"
	"time"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotReadQueries interface {
	GetTimeSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.TimeSlots, error)
	ListTimeSlotsByRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTimeSlotsByRangeParams) ([]sqlc.TimeSlots, error)
	ListAvailableTimeSlotsByDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableTimeSlotsByDateParams) ([]sqlc.TimeSlots, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row, err := r.queries.GetTimeSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get time slot by id", err)
	}
	return toSlotView(row), nil
}

// ListByRange is inclusive on both bounds; nil bounds are open.
func (r *SlotReadStore) ListByRange(ctx context.Context, start, end *time.Time) ([]*queries.SlotView, error) {
	params := sqlc.ListTimeSlotsByRangeParams{
		StartDate: pgconv.DatePtrToPgtype(start),
		EndDate:   pgconv.DatePtrToPgtype(end),
	}
	rows, err := r.queries.ListTimeSlotsByRange(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slots by range", err)
	}
	return toSlotViews(rows), nil
}

// ListAvailable returns available slots of one day, at least minMinutes long, by start time.
func (r *SlotReadStore) ListAvailable(ctx context.Context, date time.Time, minMinutes int32) ([]*queries.SlotView, error) {
	params := sqlc.ListAvailableTimeSlotsByDateParams{
		Date:       pgconv.DateToPgtype(date),
		MinMinutes: minMinutes,
	}
	rows, err := r.queries.ListAvailableTimeSlotsByDate(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available time slots", err)
	}
	return toSlotViews(rows), nil
}

func toSlotView(row sqlc.TimeSlots) *queries.SlotView {
	return &queries.SlotView{
		ID:        row.ID,
		Date:      formatDate(row.Date),
		StartTime: formatClock(row.StartTime),
		EndTime:   formatClock(row.EndTime),
		Available: row.Available,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toSlotViews(rows []sqlc.TimeSlots) []*queries.SlotView {
	result := make([]*queries.SlotView, len(rows))
	for i, row := range rows {
		result[i] = toSlotView(row)
	}
	return result
}

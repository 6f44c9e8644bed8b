package readstore

import (
	"context"
	"time"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentViewQueries interface {
	GetAppointmentViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetAppointmentViewByIDRow, error)
	ListAppointmentViewsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentViewsByUserParams) ([]sqlc.ListAppointmentViewsByUserRow, error)
	ListAppointmentViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentViewsParams) ([]sqlc.ListAppointmentViewsRow, error)
	ListAppointmentViewsBySlotDateRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentViewsBySlotDateRangeParams) ([]sqlc.ListAppointmentViewsBySlotDateRangeRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get appointment view by id", err)
	}
	return toAppointmentView(row), nil
}

// FindByUser lists newest first. A nil after starts from the first page.
func (r *AppointmentReadStore) FindByUser(ctx context.Context, userID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.AppointmentView, error) {
	afterAt, afterID := keysetParams(after)
	params := sqlc.ListAppointmentViewsByUserParams{
		UserID:         userID,
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		RowLimit:       limit,
	}
	rows, err := r.queries.ListAppointmentViewsByUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by user", err)
	}
	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = toAppointmentView(sqlc.GetAppointmentViewByIDRow(row))
	}
	return result, nil
}

func (r *AppointmentReadStore) FindAll(ctx context.Context, status *string, after *queries.Keyset, limit int32) ([]*queries.AppointmentView, error) {
	afterAt, afterID := keysetParams(after)
	params := sqlc.ListAppointmentViewsParams{
		Status:         pgconv.StringPtrToPgtype(status),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		RowLimit:       limit,
	}
	rows, err := r.queries.ListAppointmentViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = toAppointmentView(sqlc.GetAppointmentViewByIDRow(row))
	}
	return result, nil
}

// FindBySlotDateRange returns appointments whose slot falls between start and end, ordered by slot.
func (r *AppointmentReadStore) FindBySlotDateRange(ctx context.Context, start, end time.Time) ([]*queries.AppointmentView, error) {
	params := sqlc.ListAppointmentViewsBySlotDateRangeParams{
		StartDate: pgconv.DateToPgtype(start),
		EndDate:   pgconv.DateToPgtype(end),
	}
	rows, err := r.queries.ListAppointmentViewsBySlotDateRange(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by slot date", err)
	}
	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = toAppointmentView(sqlc.GetAppointmentViewByIDRow(row))
	}
	return result, nil
}

func keysetParams(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{Valid: false}, pgtype.UUID{Valid: false}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}

func toAppointmentView(row sqlc.GetAppointmentViewByIDRow) *queries.AppointmentView {
	v := &queries.AppointmentView{
		ID:         row.ID,
		Status:     row.Status,
		Notes:      pgconv.StringPtrFromPgtype(row.Notes),
		AdminNotes: pgconv.StringPtrFromPgtype(row.AdminNotes),
		Client: queries.ClientSummary{
			ID:    row.UserID,
			Name:  row.UserName,
			Email: row.UserEmail,
		},
		Service: queries.ServiceSummary{
			ID:              row.ServiceID,
			Name:            row.ServiceName,
			PriceCents:      row.ServicePriceCents,
			DurationMinutes: row.ServiceDurationMinutes,
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.SlotID.Valid && row.SlotDate.Valid {
		v.Slot = &queries.SlotSummary{
			ID:        uuid.UUID(row.SlotID.Bytes),
			Date:      formatDate(row.SlotDate),
			StartTime: formatClock(row.SlotStartTime),
			EndTime:   formatClock(row.SlotEndTime),
		}
	}
	return v
}

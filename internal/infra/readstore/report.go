package readstore

import (
	"context"
	"time"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"
)

type ReportReadQueries interface {
	GetDashboardStats(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDashboardStatsParams) (sqlc.GetDashboardStatsRow, error)
}

type ReportReadStore struct {
	queries ReportReadQueries
	db      sqlc.DBTX
}

func NewReportReadStore(queries ReportReadQueries, db sqlc.DBTX) *ReportReadStore {
	return &ReportReadStore{
		queries: queries,
		db:      db,
	}
}

// DashboardStats counts revenue of completed appointments whose slot lies in [monthStart, monthEnd].
func (r *ReportReadStore) DashboardStats(ctx context.Context, monthStart, monthEnd time.Time) (*queries.DashboardView, error) {
	row, err := r.queries.GetDashboardStats(ctx, r.db, sqlc.GetDashboardStatsParams{
		MonthStart: pgconv.DateToPgtype(monthStart),
		MonthEnd:   pgconv.DateToPgtype(monthEnd),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get dashboard stats", err)
	}
	return &queries.DashboardView{
		TotalAppointments:   row.TotalAppointments,
		PendingAppointments: row.PendingAppointments,
		TotalClients:        row.TotalClients,
		MonthlyRevenueCents: row.MonthlyRevenueCents,
	}, nil
}

package readstore

import (
	"context"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadQueries interface {
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
	ListActiveServices(ctx context.Context, db sqlc.DBTX) ([]sqlc.Services, error)
	ListAllServices(ctx context.Context, db sqlc.DBTX) ([]sqlc.Services, error)
	ListActiveServicesByCategory(ctx context.Context, db sqlc.DBTX, category string) ([]sqlc.Services, error)
}

type ServiceReadStore struct {
	queries ServiceReadQueries
	db      sqlc.DBTX
}

func NewServiceReadStore(queries ServiceReadQueries, db sqlc.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service by id", err)
	}
	return toServiceView(row), nil
}

func (r *ServiceReadStore) ListActive(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListActiveServices(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active services", err)
	}
	return toServiceViews(rows), nil
}

func (r *ServiceReadStore) ListAll(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListAllServices(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	return toServiceViews(rows), nil
}

func (r *ServiceReadStore) ListActiveByCategory(ctx context.Context, category string) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListActiveServicesByCategory(ctx, r.db, category)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services by category", err)
	}
	return toServiceViews(rows), nil
}

func toServiceView(row sqlc.Services) *queries.ServiceView {
	return &queries.ServiceView{
		ID:              row.ID,
		Name:            row.Name,
		Description:     pgconv.StringPtrFromPgtype(row.Description),
		PriceCents:      row.PriceCents,
		DurationMinutes: row.DurationMinutes,
		Category:        row.Category,
		ImageURL:        pgconv.StringPtrFromPgtype(row.ImageUrl),
		Active:          row.Active,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toServiceViews(rows []sqlc.Services) []*queries.ServiceView {
	result := make([]*queries.ServiceView, len(rows))
	for i, row := range rows {
		result[i] = toServiceView(row)
	}
	return result
}

package repository

import (
	"context"

	"slot-booking/internal/domain/service"
	"slot-booking/internal/infra"
	"slot-booking/internal/infra/repository/converter"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ServiceWriteQueries interface {
	CreateService(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceParams) (sqlc.Services, error)
	UpdateService(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceParams) (sqlc.Services, error)
	GetServiceForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
	DeleteService(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ServiceRepository struct {
	queries ServiceWriteQueries
	db      sqlc.DBTX
}

func NewServiceRepository(queries ServiceWriteQueries, db sqlc.DBTX) *ServiceRepository {
	return &ServiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, tx sqlc.DBTX, s *service.Service) (*service.Service, error) {
	row, err := r.queries.CreateService(ctx, tx, converter.ServiceToCreateParams(s))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create service", err)
	}
	return converter.ServiceFromRow(row), nil
}

func (r *ServiceRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*service.Service, error) {
	row, err := r.queries.GetServiceForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock service", err)
	}
	return converter.ServiceFromRow(row), nil
}

func (r *ServiceRepository) Update(ctx context.Context, tx sqlc.DBTX, s *service.Service) (*service.Service, error) {
	row, err := r.queries.UpdateService(ctx, tx, converter.ServiceToUpdateParams(s))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update service", err)
	}
	return converter.ServiceFromRow(row), nil
}

// Delete fails with KindForeignKeyViolated while appointments reference the service.
func (r *ServiceRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteService(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

package commands

import (
	"context"

	"slot-booking/internal/usecase/shared"
)

type MaintenanceCommands interface {
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
}

type maintenanceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewMaintenanceCommands(uow shared.UnitOfWork) MaintenanceCommands {
	return &maintenanceCommandsImpl{uow: uow}
}

func (m *maintenanceCommandsImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	var purged int64
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, tx.DB())
		purged = n
		return err
	})
	return purged, err
}

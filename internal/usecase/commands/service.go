package commands

import (
	"context"

	"slot-booking/internal/domain/service"
	reqdto "slot-booking/internal/handler/dto/request"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceCommands interface {
	CreateService(ctx context.Context, actor shared.Actor, req reqdto.CreateServiceRequest) (*queries.ServiceView, error)
	UpdateService(ctx context.Context, actor shared.Actor, serviceID uuid.UUID, req reqdto.UpdateServiceRequest) (*queries.ServiceView, error)
	DeleteService(ctx context.Context, actor shared.Actor, serviceID uuid.UUID) error
}

type serviceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewServiceCommands(uow shared.UnitOfWork) ServiceCommands {
	return &serviceCommandsImpl{uow: uow}
}

func (c *serviceCommandsImpl) CreateService(ctx context.Context, actor shared.Actor, req reqdto.CreateServiceRequest) (*queries.ServiceView, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	svc, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var created *service.Service
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		created, derr = tx.Services().Create(ctx, tx.DB(), svc)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return toServiceView(created), nil
}

func (c *serviceCommandsImpl) UpdateService(
	ctx context.Context,
	actor shared.Actor,
	serviceID uuid.UUID,
	req reqdto.UpdateServiceRequest,
) (*queries.ServiceView, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	var updated *service.Service
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Services().LockByID(ctx, tx.DB(), serviceID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrServiceNotFound
			}
			return derr
		}

		if derr = req.Apply(existing); derr != nil {
			return errs.Mark(derr, errs.ErrValidation)
		}

		updated, derr = tx.Services().Update(ctx, tx.DB(), existing)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return toServiceView(updated), nil
}

// DeleteService is rejected while any appointment, finished or not, references the service.
func (c *serviceCommandsImpl) DeleteService(ctx context.Context, actor shared.Actor, serviceID uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Services().Delete(ctx, tx.DB(), serviceID)
		switch {
		case err == nil:
			return nil
		case infra.IsKind(err, infra.KindNotFound):
			return ErrServiceNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrServiceInUse
		default:
			return err
		}
	})
}

func toServiceView(s *service.Service) *queries.ServiceView {
	return &queries.ServiceView{
		ID:              s.ID(),
		Name:            s.Name(),
		Description:     s.Description(),
		PriceCents:      s.PriceCents(),
		DurationMinutes: s.DurationMinutes(),
		Category:        s.Category(),
		ImageURL:        s.ImageURL(),
		Active:          s.IsActive(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

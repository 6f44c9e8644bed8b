package queries

import (
	"context"
	"strings"

	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListActive(ctx context.Context) ([]*ServiceView, error)
	ListByCategory(ctx context.Context, category string) ([]*ServiceView, error)
	ListAll(ctx context.Context, actor shared.Actor) ([]*ServiceView, error)
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListActive(ctx context.Context) ([]*ServiceView, error)
	ListAll(ctx context.Context) ([]*ServiceView, error)
	ListActiveByCategory(ctx context.Context, category string) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "find service")
	}
	return view, nil
}

func (q *serviceQueriesImpl) ListActive(ctx context.Context) ([]*ServiceView, error) {
	views, err := q.readStore.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list active services")
	}
	return views, nil
}

func (q *serviceQueriesImpl) ListByCategory(ctx context.Context, category string) ([]*ServiceView, error) {
	views, err := q.readStore.ListActiveByCategory(ctx, strings.ToLower(strings.TrimSpace(category)))
	if err != nil {
		return nil, errs.Wrap(err, "list services by category")
	}
	return views, nil
}

func (q *serviceQueriesImpl) ListAll(ctx context.Context, actor shared.Actor) ([]*ServiceView, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}
	views, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list services")
	}
	return views, nil
}

package queries

import (
	"context"
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotQueries interface {
	ListByRange(ctx context.Context, actor shared.Actor, r slot.DateRange) ([]*SlotView, error)
	// ListAvailable keeps only slots long enough for the service when serviceID is given.
	ListAvailable(ctx context.Context, date time.Time, serviceID *uuid.UUID) ([]*SlotView, error)
}

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	ListByRange(ctx context.Context, start, end *time.Time) ([]*SlotView, error)
	ListAvailable(ctx context.Context, date time.Time, minMinutes int32) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	slots    SlotReadStore
	services ServiceReadStore
}

func NewSlotQueries(slots SlotReadStore, services ServiceReadStore) SlotQueries {
	return &slotQueriesImpl{
		slots:    slots,
		services: services,
	}
}

func (q *slotQueriesImpl) ListByRange(ctx context.Context, actor shared.Actor, r slot.DateRange) ([]*SlotView, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	views, err := q.slots.ListByRange(ctx, r.Start(), r.End())
	if err != nil {
		return nil, errs.Wrap(err, "list time slots")
	}
	return views, nil
}

func (q *slotQueriesImpl) ListAvailable(ctx context.Context, date time.Time, serviceID *uuid.UUID) ([]*SlotView, error) {
	var minMinutes int32
	if serviceID != nil {
		svc, err := q.services.FindByID(ctx, *serviceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrServiceUnavailable
			}
			return nil, errs.Wrap(err, "find service")
		}
		if !svc.Active {
			return nil, ErrServiceUnavailable
		}
		minMinutes = svc.DurationMinutes
	}

	views, err := q.slots.ListAvailable(ctx, slot.NormalizeDate(date), minMinutes)
	if err != nil {
		return nil, errs.Wrap(err, "list available time slots")
	}
	return views, nil
}

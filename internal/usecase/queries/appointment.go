package queries

import (
	"context"
	"time"

	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AppointmentView, error)
	// GetByIDSystem skips the ownership check; used for read-after-write and idempotent replays.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListMine(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) (*AppointmentPage, error)
	ListAll(ctx context.Context, actor shared.Actor, status *string, cursor *Cursor, limit int) (*AppointmentPage, error)
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByUser(ctx context.Context, userID uuid.UUID, after *Keyset, limit int32) ([]*AppointmentView, error)
	FindAll(ctx context.Context, status *string, after *Keyset, limit int32) ([]*AppointmentView, error)
	FindBySlotDateRange(ctx context.Context, start, end time.Time) ([]*AppointmentView, error)
}

type AppointmentPage struct {
	Items      []*AppointmentView `json:"items"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
}

func NewAppointmentQueries(readStore AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{
		readStore: readStore,
	}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AppointmentView, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccess(view.Client.ID) {
		return nil, ErrAppointmentAccess
	}
	return view, nil
}

func (q *appointmentQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Wrap(err, "find appointment")
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ListMine(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) (*AppointmentPage, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	after, err := cursor.Keyset()
	if err != nil {
		return nil, err
	}

	limit = ClampLimit(limit)
	// #nosec G115 -- limit is capped by ClampLimit
	rows, err := q.readStore.FindByUser(ctx, actor.ID, after, int32(limit+1))
	if err != nil {
		return nil, errs.Wrap(err, "list appointments by user")
	}
	return newAppointmentPage(rows, limit), nil
}

func (q *appointmentQueriesImpl) ListAll(ctx context.Context, actor shared.Actor, status *string, cursor *Cursor, limit int) (*AppointmentPage, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	after, err := cursor.Keyset()
	if err != nil {
		return nil, err
	}

	limit = ClampLimit(limit)
	// #nosec G115 -- limit is capped by ClampLimit
	rows, err := q.readStore.FindAll(ctx, status, after, int32(limit+1))
	if err != nil {
		return nil, errs.Wrap(err, "list appointments")
	}
	return newAppointmentPage(rows, limit), nil
}

// rows holds up to limit+1 entries; the extra one only signals that another page exists.
func newAppointmentPage(rows []*AppointmentView, limit int) *AppointmentPage {
	page := &AppointmentPage{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		last := page.Items[limit-1]
		next := Keyset{CreatedAt: last.CreatedAt, ID: last.ID}.Encode()
		page.NextCursor = &next
	}
	if page.Items == nil {
		page.Items = []*AppointmentView{}
	}
	return page
}

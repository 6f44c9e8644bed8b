package queries

import (
	"context"

	"github.com/google/uuid"

	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/shared"
)

var (
	ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrUserInactive = errs.Mark(errs.New("user inactive"), errs.ErrForbidden)
)

type UserQueries interface {
	// GetCurrentUser resolves the token subject; a deactivated account is Forbidden.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	// ListClients is admin only, ordered by name.
	ListClients(ctx context.Context, actor shared.Actor) ([]*ClientView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	ListClients(ctx context.Context) ([]*ClientView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, errs.Wrap(err, "find current user")
	case !u.IsActive:
		return nil, ErrUserInactive
	}
	return u, nil
}

func (q *userQueriesImpl) ListClients(ctx context.Context, actor shared.Actor) ([]*ClientView, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}
	clients, err := q.readStore.ListClients(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list clients")
	}
	return clients, nil
}

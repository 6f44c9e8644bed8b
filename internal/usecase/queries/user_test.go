//go:build unit

package queries_test

import (
	"context"
	"testing"

	"slot-booking/internal/domain/user"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"
	queriesmock "slot-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)
	q := queries.NewUserQueries(store)
	id := uuid.New()

	t.Run("有効なユーザー", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), id).Return(&queries.AuthorizedUserView{ID: id, IsActive: true}, nil)

		got, err := q.GetCurrentUser(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("存在しないユーザー", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := q.GetCurrentUser(context.Background(), id)

		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})

	t.Run("無効化されたユーザー", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), id).Return(&queries.AuthorizedUserView{ID: id, IsActive: false}, nil)

		_, err := q.GetCurrentUser(context.Background(), id)

		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})
}

func TestUserQueries_ListClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)
	q := queries.NewUserQueries(store)

	t.Run("管理者は一覧を取得できる", func(t *testing.T) {
		admin := shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}
		store.EXPECT().ListClients(gomock.Any()).Return([]*queries.ClientView{{Name: "Hanako"}}, nil)

		got, err := q.ListClients(context.Background(), admin)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("クライアントは不可", func(t *testing.T) {
		client := shared.Actor{ID: uuid.New(), Role: user.RoleClient}

		_, err := q.ListClients(context.Background(), client)

		require.ErrorIs(t, err, queries.ErrAdminOnly)
	})
}

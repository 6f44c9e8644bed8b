//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slot-booking/internal/domain/user"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"
	"slot-booking/tests/common/builder"
	queriesmock "slot-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func views(n int, owner uuid.UUID) []*queries.AppointmentView {
	base := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	out := make([]*queries.AppointmentView, n)
	for i := range out {
		v := builder.NewAppointmentBuilder().WithUserID(owner).BuildView()
		v.CreatedAt = base.Add(-time.Duration(i) * time.Minute)
		out[i] = v
	}
	return out
}

func TestAppointmentQueries_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAppointmentReadStore(ctrl)
	q := queries.NewAppointmentQueries(store)
	actor := shared.Actor{ID: uuid.New(), Role: user.RoleClient}

	t.Run("次ページあり", func(t *testing.T) {
		rows := views(3, actor.ID)
		store.EXPECT().FindByUser(gomock.Any(), actor.ID, (*queries.Keyset)(nil), int32(3)).Return(rows, nil)

		page, err := q.ListMine(context.Background(), actor, nil, 2)

		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		require.NotNil(t, page.NextCursor)

		next, err := queries.DecodeKeyset(*page.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, next.ID)
		assert.True(t, rows[1].CreatedAt.Equal(next.CreatedAt))
	})

	t.Run("最終ページ", func(t *testing.T) {
		rows := views(1, actor.ID)
		store.EXPECT().FindByUser(gomock.Any(), actor.ID, gomock.Any(), int32(3)).Return(rows, nil)

		page, err := q.ListMine(context.Background(), actor, nil, 2)

		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("空の結果は空配列", func(t *testing.T) {
		store.EXPECT().FindByUser(gomock.Any(), actor.ID, gomock.Any(), gomock.Any()).Return(nil, nil)

		page, err := q.ListMine(context.Background(), actor, nil, 0)

		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})

	t.Run("カーソル指定", func(t *testing.T) {
		at := time.Date(2030, 1, 1, 11, 0, 0, 0, time.UTC)
		id := uuid.New()
		cursor := &queries.Cursor{After: queries.Keyset{CreatedAt: at, ID: id}.Encode()}
		store.EXPECT().FindByUser(gomock.Any(), actor.ID, gomock.Any(), int32(21)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, after *queries.Keyset, _ int32) ([]*queries.AppointmentView, error) {
				require.NotNil(t, after)
				assert.Equal(t, id, after.ID)
				assert.True(t, at.Equal(after.CreatedAt))
				return nil, nil
			})

		_, err := q.ListMine(context.Background(), actor, cursor, 0)
		require.NoError(t, err)
	})

	t.Run("不正なカーソルNG", func(t *testing.T) {
		_, err := q.ListMine(context.Background(), actor, &queries.Cursor{After: "garbage"}, 10)

		require.ErrorIs(t, err, queries.ErrInvalidCursor)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestAppointmentQueries_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAppointmentReadStore(ctrl)
	q := queries.NewAppointmentQueries(store)

	t.Run("ステータスで絞り込み", func(t *testing.T) {
		admin := shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}
		status := "pending"
		store.EXPECT().FindAll(gomock.Any(), &status, gomock.Any(), int32(queries.MaxListLimit+1)).Return(nil, nil)

		_, err := q.ListAll(context.Background(), admin, &status, nil, 1000)
		require.NoError(t, err)
	})

	t.Run("クライアントは不可", func(t *testing.T) {
		client := shared.Actor{ID: uuid.New(), Role: user.RoleClient}

		_, err := q.ListAll(context.Background(), client, nil, nil, 10)

		require.ErrorIs(t, err, queries.ErrAdminOnly)
	})
}

func TestAppointmentQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAppointmentReadStore(ctrl)
	q := queries.NewAppointmentQueries(store)
	owner := shared.Actor{ID: uuid.New(), Role: user.RoleClient}

	t.Run("所有者は取得可能", func(t *testing.T) {
		v := builder.NewAppointmentBuilder().WithUserID(owner.ID).BuildView()
		store.EXPECT().FindByID(gomock.Any(), v.ID).Return(v, nil)

		got, err := q.GetByID(context.Background(), owner, v.ID)

		require.NoError(t, err)
		assert.Equal(t, v.ID, got.ID)
	})

	t.Run("他人の予約はForbidden", func(t *testing.T) {
		v := builder.NewAppointmentBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), v.ID).Return(v, nil)

		_, err := q.GetByID(context.Background(), owner, v.ID)

		require.ErrorIs(t, err, queries.ErrAppointmentAccess)
	})

	t.Run("存在しない予約はNotFound", func(t *testing.T) {
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("find", pgx.ErrNoRows))

		_, err := q.GetByID(context.Background(), owner, id)

		require.ErrorIs(t, err, queries.ErrAppointmentNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestCursor(t *testing.T) {
	t.Run("エンコードとデコード", func(t *testing.T) {
		at := time.Date(2030, 5, 6, 7, 8, 9, 123456000, time.UTC)
		id := uuid.New()

		got, err := queries.DecodeKeyset(queries.Keyset{CreatedAt: at, ID: id}.Encode())

		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.True(t, at.Equal(got.CreatedAt))
	})

	t.Run("空のカーソルNG", func(t *testing.T) {
		_, err := queries.DecodeKeyset("")
		require.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("上限値の補正", func(t *testing.T) {
		assert.Equal(t, queries.DefaultListLimit, queries.ClampLimit(0))
		assert.Equal(t, 50, queries.ClampLimit(50))
		assert.Equal(t, queries.MaxListLimit, queries.ClampLimit(queries.MaxListLimit+1))
	})
}

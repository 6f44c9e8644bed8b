//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/domain/user"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"
	"slot-booking/tests/common/builder"
	queriesmock "slot-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlotQueries_ListAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	slots := queriesmock.NewMockSlotReadStore(ctrl)
	services := queriesmock.NewMockServiceReadStore(ctrl)
	q := queries.NewSlotQueries(slots, services)
	day := time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("サービス指定なし", func(t *testing.T) {
		want := []*queries.SlotView{builder.NewSlotBuilder().BuildView()}
		slots.EXPECT().ListAvailable(gomock.Any(), day, int32(0)).Return(want, nil)

		got, err := q.ListAvailable(context.Background(), day.Add(15*time.Hour), nil)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("サービスの所要時間で絞り込み", func(t *testing.T) {
		svc := builder.NewServiceBuilder().WithDuration(90).BuildView()
		services.EXPECT().FindByID(gomock.Any(), svc.ID).Return(svc, nil)
		slots.EXPECT().ListAvailable(gomock.Any(), day, int32(90)).Return(nil, nil)

		_, err := q.ListAvailable(context.Background(), day, &svc.ID)
		require.NoError(t, err)
	})

	t.Run("停止中のサービスNG", func(t *testing.T) {
		svc := builder.NewServiceBuilder().AsInactive().BuildView()
		services.EXPECT().FindByID(gomock.Any(), svc.ID).Return(svc, nil)

		_, err := q.ListAvailable(context.Background(), day, &svc.ID)

		require.ErrorIs(t, err, queries.ErrServiceUnavailable)
	})
}

func TestSlotQueries_ListByRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	slots := queriesmock.NewMockSlotReadStore(ctrl)
	q := queries.NewSlotQueries(slots, queriesmock.NewMockServiceReadStore(ctrl))

	t.Run("管理者は範囲指定で取得", func(t *testing.T) {
		r, err := slot.NewDateRange("2030-01-01", "2030-01-31")
		require.NoError(t, err)
		slots.EXPECT().ListByRange(gomock.Any(), r.Start(), r.End()).Return(nil, nil)

		_, err = q.ListByRange(context.Background(), shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}, r)
		require.NoError(t, err)
	})

	t.Run("クライアントは不可", func(t *testing.T) {
		_, err := q.ListByRange(context.Background(), shared.Actor{ID: uuid.New(), Role: user.RoleClient}, slot.DateRange{})
		require.ErrorIs(t, err, queries.ErrAdminOnly)
	})
}

//go:build unit

package repository

import (
	"context"
	"testing"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlotWriteQueries struct {
	mock.Mock
}

func (m *MockSlotWriteQueries) CreateTimeSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTimeSlotParams) (sqlc.TimeSlots, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.TimeSlots), args.Error(1)
}

func (m *MockSlotWriteQueries) CreateTimeSlotIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTimeSlotIfAbsentParams) (sqlc.TimeSlots, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.TimeSlots), args.Error(1)
}

func (m *MockSlotWriteQueries) GetTimeSlotForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.TimeSlots, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.TimeSlots), args.Error(1)
}

func (m *MockSlotWriteQueries) ClaimTimeSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSlotWriteQueries) ReleaseTimeSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSlotWriteQueries) CountActiveAppointmentsForSlot(ctx context.Context, db sqlc.DBTX, slotID pgtype.UUID) (int64, error) {
	args := m.Called(ctx, db, slotID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSlotWriteQueries) DeleteTimeSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestSlotRepository_Create(t *testing.T) {
	s, err := builder.NewSlotBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		q := new(MockSlotWriteQueries)
		row := builder.NewSlotBuilder().BuildInfra()
		q.On("CreateTimeSlot", mock.Anything, mock.Anything, mock.Anything).Return(row, nil)

		created, err := NewSlotRepository(q, nil).Create(context.Background(), nil, s)

		require.NoError(t, err)
		assert.Equal(t, row.ID, created.ID())
		assert.True(t, created.IsAvailable())
	})

	t.Run("same date and start is a duplicate", func(t *testing.T) {
		q := new(MockSlotWriteQueries)
		q.On("CreateTimeSlot", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.TimeSlots{}, &pgconn.PgError{Code: "23505", ConstraintName: "time_slots_date_start_key"})

		_, err := NewSlotRepository(q, nil).Create(context.Background(), nil, s)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "time_slots_date_start_key", infra.ConstraintOf(err))
	})
}

func TestSlotRepository_CreateIfAbsent(t *testing.T) {
	s, err := builder.NewSlotBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("conflict returns no row and no error", func(t *testing.T) {
		q := new(MockSlotWriteQueries)
		q.On("CreateTimeSlotIfAbsent", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.TimeSlots{}, pgx.ErrNoRows)

		created, ok, err := NewSlotRepository(q, nil).CreateIfAbsent(context.Background(), nil, s)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, created)
	})

	t.Run("inserted", func(t *testing.T) {
		q := new(MockSlotWriteQueries)
		q.On("CreateTimeSlotIfAbsent", mock.Anything, mock.Anything, mock.Anything).Return(builder.NewSlotBuilder().BuildInfra(), nil)

		created, ok, err := NewSlotRepository(q, nil).CreateIfAbsent(context.Background(), nil, s)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotNil(t, created)
	})
}

func TestSlotRepository_Claim(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "winner flips the flag", affected: 1, want: true},
		{name: "loser sees no row", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockSlotWriteQueries)
			q.On("ClaimTimeSlot", mock.Anything, mock.Anything, id).Return(tt.affected, nil)

			won, err := NewSlotRepository(q, nil).Claim(context.Background(), nil, id)

			require.NoError(t, err)
			assert.Equal(t, tt.want, won)
		})
	}
}

func TestSlotRepository_LockByID(t *testing.T) {
	q := new(MockSlotWriteQueries)
	id := uuid.New()
	q.On("GetTimeSlotForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.TimeSlots{}, pgx.ErrNoRows)

	_, err := NewSlotRepository(q, nil).LockByID(context.Background(), nil, id)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestSlotRepository_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("unknown slot", func(t *testing.T) {
		q := new(MockSlotWriteQueries)
		q.On("DeleteTimeSlot", mock.Anything, mock.Anything, id).Return(int64(0), nil)

		err := NewSlotRepository(q, nil).Delete(context.Background(), nil, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("deleted", func(t *testing.T) {
		q := new(MockSlotWriteQueries)
		q.On("DeleteTimeSlot", mock.Anything, mock.Anything, id).Return(int64(1), nil)

		assert.NoError(t, NewSlotRepository(q, nil).Delete(context.Background(), nil, id))
	})
}

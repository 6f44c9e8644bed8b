//go:build unit

package repository

import (
	"context"
	"testing"

	"slot-booking/internal/domain/appointment"
	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentWriteQueries struct {
	mock.Mock
}

func (m *MockAppointmentWriteQueries) CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAppointmentWriteQueries) GetAppointmentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Appointments), args.Error(1)
}

func (m *MockAppointmentWriteQueries) UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentWriteQueries) UpdateAppointmentSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentSlotParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentWriteQueries) DeleteAppointment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestAppointmentRepository_Create(t *testing.T) {
	a, err := builder.NewAppointmentBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("second active booking of a slot hits the partial index", func(t *testing.T) {
		q := new(MockAppointmentWriteQueries)
		q.On("CreateAppointment", mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, &pgconn.PgError{Code: "23505", ConstraintName: "appointments_active_slot_key"})

		_, err := NewAppointmentRepository(q, nil).Create(context.Background(), nil, a)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "appointments_active_slot_key", infra.ConstraintOf(err))
	})

	t.Run("success", func(t *testing.T) {
		q := new(MockAppointmentWriteQueries)
		id := uuid.New()
		q.On("CreateAppointment", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateAppointmentParams) bool {
			return p.Status == "pending" && p.SlotID.Valid
		})).Return(id, nil)

		got, err := NewAppointmentRepository(q, nil).Create(context.Background(), nil, a)

		require.NoError(t, err)
		assert.Equal(t, id, got)
		q.AssertExpectations(t)
	})
}

func TestAppointmentRepository_LockByID(t *testing.T) {
	id := uuid.New()

	t.Run("maps the row", func(t *testing.T) {
		q := new(MockAppointmentWriteQueries)
		row := builder.NewAppointmentBuilder().WithID(id).WithStatus(appointment.StatusConfirmed).BuildInfra()
		q.On("GetAppointmentForUpdate", mock.Anything, mock.Anything, id).Return(row, nil)

		got, err := NewAppointmentRepository(q, nil).LockByID(context.Background(), nil, id)

		require.NoError(t, err)
		assert.Equal(t, id, got.ID())
		assert.Equal(t, appointment.StatusConfirmed, got.Status())
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockAppointmentWriteQueries)
		q.On("GetAppointmentForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Appointments{}, pgx.ErrNoRows)

		_, err := NewAppointmentRepository(q, nil).LockByID(context.Background(), nil, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAppointmentRepository_UpdateStatus(t *testing.T) {
	a := builder.NewAppointmentBuilder().BuildStored()
	require.NoError(t, a.ChangeStatus(appointment.StatusConfirmed))

	t.Run("guards on the previous status", func(t *testing.T) {
		q := new(MockAppointmentWriteQueries)
		q.On("UpdateAppointmentStatus", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateAppointmentStatusParams) bool {
			return p.NewStatus == "confirmed" && p.OldStatus == "pending" && p.ID == a.ID()
		})).Return(int64(1), nil)

		err := NewAppointmentRepository(q, nil).UpdateStatus(context.Background(), nil, a, appointment.StatusPending)

		require.NoError(t, err)
		q.AssertExpectations(t)
	})

	t.Run("no matching row is a conflict", func(t *testing.T) {
		q := new(MockAppointmentWriteQueries)
		q.On("UpdateAppointmentStatus", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := NewAppointmentRepository(q, nil).UpdateStatus(context.Background(), nil, a, appointment.StatusPending)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestAppointmentRepository_UpdateSlot(t *testing.T) {
	q := new(MockAppointmentWriteQueries)
	q.On("UpdateAppointmentSlot", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

	err := NewAppointmentRepository(q, nil).UpdateSlot(context.Background(), nil, uuid.New(), uuid.New(), uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindConflict))
}

func TestAppointmentRepository_Delete(t *testing.T) {
	q := new(MockAppointmentWriteQueries)
	id := uuid.New()
	q.On("DeleteAppointment", mock.Anything, mock.Anything, id).Return(int64(0), nil)

	err := NewAppointmentRepository(q, nil).Delete(context.Background(), nil, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIdempotencyWriteQueries struct {
	mock.Mock
}

func (m *MockIdempotencyWriteQueries) TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdempotencyWriteQueries) UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockIdempotencyWriteQueries) GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.IdempotencyKeys), args.Error(1)
}

func (m *MockIdempotencyWriteQueries) DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	key, userID := uuid.New(), uuid.New()
	expiresAt := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "new key", affected: 1, want: true},
		{name: "live key held by an earlier request", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockIdempotencyWriteQueries)
			q.On("TryInsertIdempotencyKey", mock.Anything, mock.Anything, sqlc.TryInsertIdempotencyKeyParams{
				Key:         key,
				UserID:      userID,
				Endpoint:    "POST /api/appointments",
				RequestHash: "hash",
				ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
			}).Return(tt.affected, nil)

			got, err := NewIdempotencyRepository(q, nil).TryInsert(context.Background(), nil, key, userID, "POST /api/appointments", "hash", expiresAt)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			q.AssertExpectations(t)
		})
	}
}

func TestIdempotencyRepository_Find(t *testing.T) {
	key, userID, apptID := uuid.New(), uuid.New(), uuid.New()

	t.Run("maps the stored outcome", func(t *testing.T) {
		q := new(MockIdempotencyWriteQueries)
		q.On("GetIdempotencyKey", mock.Anything, mock.Anything, sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID}).
			Return(sqlc.IdempotencyKeys{
				Key:                 key,
				UserID:              userID,
				Endpoint:            "POST /api/appointments",
				RequestHash:         "hash",
				Status:              "completed",
				ResultAppointmentID: pgconv.UUIDToPgtype(apptID),
			}, nil)

		rec, err := NewIdempotencyRepository(q, nil).Find(context.Background(), nil, key, userID)

		require.NoError(t, err)
		assert.Equal(t, shared.IdempotencyStatusCompleted, rec.Status)
		require.NotNil(t, rec.ResultAppointmentID)
		assert.Equal(t, apptID, *rec.ResultAppointmentID)
		assert.True(t, rec.Matches("POST /api/appointments", "hash"))
		assert.False(t, rec.Matches("POST /api/appointments", "other"))
	})

	t.Run("missing key", func(t *testing.T) {
		q := new(MockIdempotencyWriteQueries)
		q.On("GetIdempotencyKey", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.IdempotencyKeys{}, pgx.ErrNoRows)

		_, err := NewIdempotencyRepository(q, nil).Find(context.Background(), nil, key, userID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

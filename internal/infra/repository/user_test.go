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

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserWriteQueries) LockUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestUserRepository_Create(t *testing.T) {
	u, err := builder.NewUserBuilder().WithPhone("+81-90-0000-0000").BuildDomain()
	require.NoError(t, err)

	t.Run("success: maps the domain user to params", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		id := uuid.New()
		mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
			return p.Email == "test@example.com" && p.Role == "client" && p.Phone.Valid && p.IsActive
		})).Return(id, nil)

		repo := NewUserRepository(mockQueries, nil)
		got, err := repo.Create(context.Background(), nil, u)

		require.NoError(t, err)
		assert.Equal(t, id, got)
		mockQueries.AssertExpectations(t)
	})

	t.Run("duplicate email carries the constraint name", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		repo := NewUserRepository(mockQueries, nil)
		_, err := repo.Create(context.Background(), nil, u)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "users_email_key", infra.ConstraintOf(err))
	})
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success", mockError: nil, wantError: false},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, testUserID).Return(tt.mockError)

			repo := NewUserRepository(mockQueries, nil)
			err := repo.UpdateLastLogin(context.Background(), nil, testUserID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserRepository_LockByID(t *testing.T) {
	t.Run("success: rebuilds the domain user", func(t *testing.T) {
		row := builder.NewUserBuilder().WithPhone("090-1111-2222").BuildInfra()
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("LockUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		u, err := NewUserRepository(mockQueries, nil).LockByID(context.Background(), nil, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, u.ID())
		assert.Equal(t, "Test User", u.Name().Value())
		assert.Equal(t, "hashed_password", u.PasswordHash())
		require.NotNil(t, u.Phone())
		assert.Equal(t, "090-1111-2222", *u.Phone())
		assert.True(t, u.IsActive())
	})

	t.Run("missing user", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("LockUserByID", mock.Anything, mock.Anything, id).Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := NewUserRepository(mockQueries, nil).LockByID(context.Background(), nil, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown stored role", func(t *testing.T) {
		row := builder.NewUserBuilder().BuildInfra()
		row.Role = "owner"
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("LockUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		_, err := NewUserRepository(mockQueries, nil).LockByID(context.Background(), nil, row.ID)

		require.Error(t, err)
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	u, err := builder.NewUserBuilder().WithPhone("090-1111-2222").BuildDomain()
	require.NoError(t, err)
	u.ChangePhone(nil)
	u.ChangePasswordHash("new_hash")

	mockQueries := new(MockUserWriteQueries)
	mockQueries.On("UpdateUserProfile", mock.Anything, mock.Anything, sqlc.UpdateUserProfileParams{
		ID:           u.ID(),
		Name:         "Test User",
		Phone:        pgtype.Text{},
		PasswordHash: "new_hash",
	}).Return(nil)

	err = NewUserRepository(mockQueries, nil).UpdateProfile(context.Background(), nil, u)

	require.NoError(t, err)
	mockQueries.AssertExpectations(t)
}

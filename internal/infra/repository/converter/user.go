package converter

import (
	"slot-booking/internal/domain/user"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Phone:        pgconv.StringPtrToPgtype(u.Phone()),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		row.Name,
		row.Email,
		row.PasswordHash,
		pgconv.StringPtrFromPgtype(row.Phone),
		role,
		row.IsActive,
	), nil
}

func UserToUpdateProfileParams(u *user.User) sqlc.UpdateUserProfileParams {
	return sqlc.UpdateUserProfileParams{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Phone:        pgconv.StringPtrToPgtype(u.Phone()),
		PasswordHash: u.PasswordHash(),
	}
}

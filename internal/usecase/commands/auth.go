package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"slot-booking/internal/domain/user"
	reqdto "slot-booking/internal/handler/dto/request"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/password"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"
)

const userEmailConstraint = "users_email_key"

var (
	ErrInvalidCredentials   = errs.Mark(errs.New("invalid credentials"), errs.ErrValidation)
	ErrUserInactive         = errs.Mark(errs.New("user inactive"), errs.ErrForbidden)
	ErrEmailTaken           = errs.Mark(errs.New("email already registered"), errs.ErrConflict)
	ErrAuthenticationFailed = errs.New("authentication failed")

	ErrCurrentPasswordRequired  = errs.Mark(errs.New("current password is required to set a new one"), errs.ErrValidation)
	ErrCurrentPasswordIncorrect = errs.Mark(errs.New("current password is incorrect"), errs.ErrUnauthenticated)
	ErrTokenGeneration      = errs.New("token generation failed")
)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}

type AuthResult struct {
	User        *queries.AuthorizedUserView
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	// UpdateProfile changes the caller's name, phone or password. A new
	// password needs the current one.
	UpdateProfile(ctx context.Context, actor shared.Actor, req reqdto.UpdateProfileRequest) (*queries.AuthorizedUserView, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) error
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenIssuer
	passwords PasswordHasher
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenIssuer, passwords PasswordHasher) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
		passwords: passwords,
	}
}

// Register always creates a client; admins are provisioned out of band.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	hash, err := a.passwords.Hash(reg.Credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u := user.RegisterClient(reg.Name, reg.Credentials.Email(), hash, reg.Phone)

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), u)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) && infra.ConstraintOf(derr) == userEmailConstraint {
				return ErrEmailTaken
			}
			return derr
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.tokens.GenerateToken(userID, u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		User: &queries.AuthorizedUserView{
			ID:       userID,
			Name:     u.Name().Value(),
			Email:    u.Email().Value(),
			Phone:    u.Phone(),
			Role:     u.Role().String(),
			IsActive: u.IsActive(),
		},
		AccessToken: token,
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.tokens.GenerateToken(userReadModel.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userReadModel.ID)
	})
	if err != nil {
		// login already succeeded; only the last_login timestamp is stale
		slog.WarnContext(ctx, "failed to update last login", "user_id", userReadModel.ID, "error", err.Error())
	}

	return &AuthResult{
		User:        userReadModel,
		AccessToken: token,
	}, nil
}

func (a *authCommandsImpl) UpdateProfile(ctx context.Context, actor shared.Actor, req reqdto.UpdateProfileRequest) (*queries.AuthorizedUserView, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	change, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var newHash string
	if change.NewPassword != nil {
		if change.CurrentPassword == "" {
			return nil, ErrCurrentPasswordRequired
		}
		newHash, err = a.passwords.Hash(change.NewPassword.Value())
		if err != nil {
			return nil, errs.Wrap(err, "hash password")
		}
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, lerr := tx.Users().LockByID(ctx, tx.DB(), actor.ID)
		if lerr != nil {
			if infra.IsKind(lerr, infra.KindNotFound) {
				return queries.ErrUserNotFound
			}
			return lerr
		}
		if !u.IsActive() {
			return ErrUserInactive
		}

		if newHash != "" {
			if cerr := a.passwords.Compare(u.PasswordHash(), change.CurrentPassword); cerr != nil {
				if errs.Is(cerr, password.ErrMismatch) {
					return ErrCurrentPasswordIncorrect
				}
				return errs.Wrap(cerr, "verify current password")
			}
			u.ChangePasswordHash(newHash)
		}
		if change.Name != nil {
			u.Rename(*change.Name)
		}
		if change.Phone != nil {
			u.ChangePhone(change.Phone)
		}
		return tx.Users().UpdateProfile(ctx, tx.DB(), u)
	})
	if err != nil {
		return nil, err
	}

	view, err := a.readStore.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, errs.Wrap(err, "reload profile")
	}
	return view, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	if err = a.passwords.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		if errs.Is(err, password.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "verify password")
	}

	return userReadModel, nil
}

// IsInvalidCredentials reports a failed login that must not reveal which credential was wrong.
func IsInvalidCredentials(err error) bool {
	return errs.Is(err, ErrInvalidCredentials)
}

package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/jwt"
	"rental-marketplace/internal/pkg/password"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken      = errs.Sentinel("User with this email already exists", errs.ErrConflict)
	ErrTokenGeneration = errs.New("token generation failed")
	ErrPasswordHashing = errs.New("password hashing failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthCommands interface {
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
	hashCost   int
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
		hashCost:   password.DefaultCost,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pass)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	creds, err := a.uow.CommandReads().UserCredentialsByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password so accounts cannot be enumerated
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(creds.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(creds.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), creds.ID)
	})
	if err != nil {
		// login already succeeded; only the last_login bookkeeping failed
		slog.Warn("failed to update last login", "user_id", creds.ID, "error", err.Error())
	}

	return &LoginResult{UserID: creds.ID, AccessToken: token}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error) {
	reg, err := auth.NewRegistration(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPasswordWithCost(reg.Password.Value(), a.hashCost)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPasswordHashing)
	}

	u := user.NewUser(reg.Name, reg.Email, hash, reg.Role, a.clock.Now())

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cerr := tx.Users().Create(ctx, tx.DB(), u)
		if cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return cerr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

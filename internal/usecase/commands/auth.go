package commands

import (
	"context"
	"log/slog"

	reqdto "github.com/rahma103/calendrier-reservation-v2/internal/handler/dto/request"
	"github.com/rahma103/calendrier-reservation-v2/internal/infra/directory"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/errs"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/jwt"
)

type LoginResult struct {
	Username string
	Token    string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	staff      directory.StaffDirectory
	jwtService *jwt.Service
}

func NewAuthCommands(staff directory.StaffDirectory, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		staff:      staff,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	account, err := a.staff.FindByUsername(ctx, req.Username)
	if err != nil {
		// Unknown user and bad password are indistinguishable to the caller.
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	if err := account.VerifyPassword(req.Password); err != nil {
		slog.Warn("login rejected", "username", req.Username)
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(account.Username)
	if err != nil {
		return nil, errs.Wrap(err, "token generation failed")
	}

	return &LoginResult{Username: account.Username, Token: token}, nil
}

package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/user/dto"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	User         *dto.UserDTO
}

// TokenIssuer abstracts the JWT service for testability.
type TokenIssuer interface {
	GenerateTokenPair(userID uint, role string) (*auth.TokenPair, error)
	ValidateToken(tokenString, expectedType string) (*auth.Claims, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same response as a wrong password so the endpoint does not leak
			// which addresses exist.
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Infow("login rejected: bad password", "user_id", u.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	if !u.IsActive() {
		uc.logger.Infow("login rejected: inactive account", "user_id", u.ID())
		return nil, errors.NewForbiddenError("account is deactivated")
	}

	pair, err := uc.tokens.GenerateTokenPair(u.ID(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	u.RecordLogin(time.Now())
	if err := uc.userRepo.Update(ctx, u); err != nil {
		// Login still succeeds; the timestamp is best-effort.
		uc.logger.Warnw("failed to record login timestamp", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role().String())

	return &LoginResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         dto.ToUserDTO(u),
	}, nil
}

package usecases

import (
	"context"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RefreshTokenUseCase struct {
	userRepo user.Repository
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	tokens TokenIssuer,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute rotates the token pair. The new tokens carry the user's CURRENT
// role, so a role change takes effect at the next refresh rather than within
// a live session.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	if len(cmd.RefreshToken) == 0 {
		return nil, errors.NewValidationError("refresh token is required")
	}

	claims, err := uc.tokens.ValidateToken(cmd.RefreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	u, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("account no longer exists")
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, errors.NewForbiddenError("account is deactivated")
	}

	pair, err := uc.tokens.GenerateTokenPair(u.ID(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to rotate tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	return &RefreshTokenResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

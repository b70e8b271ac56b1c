package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	sharedConfig "campusdesk/internal/shared/config"
	"campusdesk/internal/shared/errors"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the JWT payload carried by both access and refresh tokens.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair bundles the access and refresh tokens issued together.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues and validates HS256 signed tokens.
type JWTService struct {
	secret     []byte
	accessExp  time.Duration
	refreshExp time.Duration
}

func NewJWTService(cfg *sharedConfig.JWTConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.Secret),
		accessExp:  time.Duration(cfg.AccessExpMinutes) * time.Minute,
		refreshExp: time.Duration(cfg.RefreshExpDays) * 24 * time.Hour,
	}
}

// GenerateTokenPair issues an access/refresh token pair for the user.
func (s *JWTService) GenerateTokenPair(userID uint, role string) (*TokenPair, error) {
	accessToken, err := s.generateToken(userID, role, TokenTypeAccess, s.accessExp)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateToken(userID, role, TokenTypeRefresh, s.refreshExp)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessExp.Seconds()),
	}, nil
}

func (s *JWTService) generateToken(userID uint, role, tokenType string, exp time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			Issuer:    "campusdesk",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and verifies a token, enforcing the expected token type.
func (s *JWTService) ValidateToken(tokenString, expectedType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.NewUnauthorizedError("invalid token claims")
	}
	if claims.TokenType != expectedType {
		return nil, errors.NewUnauthorizedError("invalid token type")
	}

	return claims, nil
}

// Package auth implements token issuance and password hashing.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	sharedConfig "campusdesk/internal/shared/config"
)

// BcryptPasswordHasher hashes passwords with bcrypt at a configurable cost.
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cfg *sharedConfig.PasswordConfig) *BcryptPasswordHasher {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

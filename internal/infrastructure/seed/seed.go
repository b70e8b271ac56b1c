// Package seed bootstraps the initial super admin account.
package seed

import (
	"context"
	"fmt"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	sharedConfig "campusdesk/internal/shared/config"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

// Seeder creates the first super admin when the instance is provisioned.
// Credentials come from configuration, never from source.
type Seeder struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewSeeder(userRepo user.Repository, hasher user.PasswordHasher) *Seeder {
	return &Seeder{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger.NewLogger().With("component", "seed"),
	}
}

// SeedAdmin creates the configured super admin account. A no-op when the
// account already exists or when no credentials are configured.
func (s *Seeder) SeedAdmin(ctx context.Context, cfg *sharedConfig.SeedConfig) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		s.logger.Infow("no seed admin configured, skipping")
		return nil
	}

	if _, err := s.userRepo.FindByEmail(ctx, cfg.AdminEmail); err == nil {
		s.logger.Infow("seed admin already exists", "email", cfg.AdminEmail)
		return nil
	} else if !errors.IsNotFoundError(err) {
		return fmt.Errorf("failed to check seed admin: %w", err)
	}

	hash, err := s.hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	admin, err := user.NewUser(cfg.AdminEmail, "System Administrator", hash, authorization.RoleSuperAdmin, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to build seed admin: %w", err)
	}

	if err := s.userRepo.Save(ctx, admin); err != nil {
		return fmt.Errorf("failed to save seed admin: %w", err)
	}

	s.logger.Infow("seed admin created", "email", cfg.AdminEmail)
	return nil
}

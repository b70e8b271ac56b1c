package usecases

import (
	"context"

	"campusdesk/internal/application/school/dto"
	"campusdesk/internal/domain/school"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetSchoolQuery struct {
	SchoolID uint
	ActorID  uint
}

type GetSchoolUseCase struct {
	schoolRepo school.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetSchoolUseCase(
	schoolRepo school.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetSchoolUseCase {
	return &GetSchoolUseCase{
		schoolRepo: schoolRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Execute returns school detail with computed counters. Out-of-scope schools
// read as not found rather than forbidden so their existence is not leaked.
func (uc *GetSchoolUseCase) Execute(ctx context.Context, query GetSchoolQuery) (*dto.SchoolDetailDTO, error) {
	scope, err := resolveScope(ctx, uc.userRepo, query.ActorID)
	if err != nil {
		return nil, err
	}
	if !scope.Allows(query.SchoolID) {
		return nil, errors.NewNotFoundError("school not found")
	}

	s, err := uc.schoolRepo.FindByID(ctx, query.SchoolID)
	if err != nil {
		return nil, err
	}

	assetCount, err := uc.schoolRepo.CountAssets(ctx, s.ID())
	if err != nil {
		return nil, err
	}
	openTickets, err := uc.schoolRepo.CountOpenTickets(ctx, s.ID())
	if err != nil {
		return nil, err
	}

	return &dto.SchoolDetailDTO{
		SchoolDTO:       *dto.ToSchoolDTO(s),
		AssetCount:      assetCount,
		OpenTicketCount: openTickets,
	}, nil
}

// resolveScope loads the acting user and derives its visibility scope.
func resolveScope(ctx context.Context, userRepo user.Repository, actorID uint) (authorization.Scope, error) {
	actor, err := userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return authorization.Scope{}, errors.NewUnauthorizedError("account no longer exists")
		}
		return authorization.Scope{}, err
	}
	return authorization.ScopeForUser(actor), nil
}

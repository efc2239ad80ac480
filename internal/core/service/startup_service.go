package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
	"github.com/vcplatform/marketplace/internal/metrics"
)

const kindStartup = "startup"

// StartupService implements ports.StartupService.
type StartupService struct {
	repo  ports.StartupRepository
	cache ports.ProfileCache // optional
	log   zerolog.Logger
}

// NewStartupService returns a StartupService. cache may be nil.
func NewStartupService(repo ports.StartupRepository, cache ports.ProfileCache, log zerolog.Logger) *StartupService {
	return &StartupService{repo: repo, cache: cache, log: log}
}

// Create stores the caller's startup profile. A second profile for the same
// owner fails with domain.ErrStartupExists.
func (s *StartupService) Create(ctx context.Context, owner *domain.Principal, details domain.StartupDetails) (*domain.Startup, error) {
	if owner == nil {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.repo.FindByOwner(ctx, owner.ID); err == nil {
		return nil, domain.ErrStartupExists
	} else if !errors.Is(err, domain.ErrStartupNotFound) {
		return nil, err
	}

	if details.Industry == nil {
		details.Industry = []string{}
	}
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Startup{
		UserID:         owner.ID,
		StartupDetails: details,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrStartupExists) {
			s.log.Error().Err(err).Str("user_id", owner.ID).Msg("failed to create startup profile")
		}
		return nil, err
	}

	metrics.ProfilesCreatedTotal.WithLabelValues(kindStartup).Inc()
	s.log.Info().Str("startup_id", created.ID).Str("user_id", owner.ID).Msg("startup profile created")
	return created, nil
}

// Get returns a startup profile by ID, consulting the cache first.
func (s *StartupService) Get(ctx context.Context, id string) (*domain.Startup, error) {
	var cached domain.Startup
	if s.cacheGet(ctx, id, &cached) {
		return &cached, nil
	}

	startup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheFill(ctx, id, startup)
	return startup, nil
}

// Mine returns the caller's own startup profile.
func (s *StartupService) Mine(ctx context.Context, owner *domain.Principal) (*domain.Startup, error) {
	if owner == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.FindByOwner(ctx, owner.ID)
}

// UpdateMine merges patch into the caller's startup profile.
func (s *StartupService) UpdateMine(ctx context.Context, owner *domain.Principal, patch ports.StartupPatch) (*domain.Startup, error) {
	if owner == nil {
		return nil, domain.ErrUnauthorized
	}

	updated, err := s.repo.UpdateByOwner(ctx, owner.ID, patch)
	if err != nil {
		return nil, err
	}
	s.cacheReplace(ctx, updated)

	s.log.Info().Str("startup_id", updated.ID).Str("user_id", owner.ID).Msg("startup profile updated")
	return updated, nil
}

// List returns one page of startups matching filter, newest first.
func (s *StartupService) List(ctx context.Context, filter ports.StartupFilter) (*ports.Page[*domain.Startup], error) {
	filter.PageRequest = normalizePage(filter.PageRequest)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return newPage(items, total, filter.PageRequest), nil
}

func (s *StartupService) cacheGet(ctx context.Context, id string, dst *domain.Startup) bool {
	return profileCacheGet(ctx, s.cache, s.log, kindStartup, id, dst)
}

func (s *StartupService) cacheFill(ctx context.Context, id string, doc *domain.Startup) {
	profileCacheFill(ctx, s.cache, s.log, kindStartup, id, doc)
}

func (s *StartupService) cacheReplace(ctx context.Context, doc *domain.Startup) {
	profileCacheReplace(ctx, s.cache, s.log, kindStartup, doc.ID, doc)
}

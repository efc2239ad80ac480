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

const kindInvestor = "investor"

// InvestorService implements ports.InvestorService.
type InvestorService struct {
	repo  ports.InvestorRepository
	cache ports.ProfileCache // optional
	log   zerolog.Logger
}

// NewInvestorService returns an InvestorService backed by repo; cache may be nil.
func NewInvestorService(repo ports.InvestorRepository, cache ports.ProfileCache, log zerolog.Logger) *InvestorService {
	return &InvestorService{repo: repo, cache: cache, log: log}
}

// Create stores the caller's investor profile, failing with
// domain.ErrInvestorExists when one already exists.
func (s *InvestorService) Create(ctx context.Context, owner *domain.Principal, details domain.InvestorDetails) (*domain.Investor, error) {
	if owner == nil {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.repo.FindByOwner(ctx, owner.ID); err == nil {
		return nil, domain.ErrInvestorExists
	} else if !errors.Is(err, domain.ErrInvestorNotFound) {
		return nil, err
	}

	if details.PreferredStages == nil {
		details.PreferredStages = []domain.FundingStage{}
	}
	if details.PreferredIndustries == nil {
		details.PreferredIndustries = []string{}
	}
	if details.Portfolio == nil {
		details.Portfolio = []domain.PortfolioCompany{}
	}
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Investor{
		UserID:          owner.ID,
		InvestorDetails: details,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInvestorExists) {
			s.log.Error().Err(err).Str("user_id", owner.ID).Msg("failed to create investor profile")
		}
		return nil, err
	}

	metrics.ProfilesCreatedTotal.WithLabelValues(kindInvestor).Inc()
	s.log.Info().Str("investor_id", created.ID).Str("user_id", owner.ID).Msg("investor profile created")
	return created, nil
}

// Get returns an investor profile by ID, consulting the cache first.
func (s *InvestorService) Get(ctx context.Context, id string) (*domain.Investor, error) {
	var cached domain.Investor
	if s.cacheGet(ctx, id, &cached) {
		return &cached, nil
	}

	investor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheFill(ctx, id, investor)
	return investor, nil
}

// Mine returns the caller's own investor profile.
func (s *InvestorService) Mine(ctx context.Context, owner *domain.Principal) (*domain.Investor, error) {
	if owner == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.FindByOwner(ctx, owner.ID)
}

// UpdateMine merges patch into the caller's investor profile.
func (s *InvestorService) UpdateMine(ctx context.Context, owner *domain.Principal, patch ports.InvestorPatch) (*domain.Investor, error) {
	if owner == nil {
		return nil, domain.ErrUnauthorized
	}

	updated, err := s.repo.UpdateByOwner(ctx, owner.ID, patch)
	if err != nil {
		return nil, err
	}
	s.cacheReplace(ctx, updated)

	s.log.Info().Str("investor_id", updated.ID).Str("user_id", owner.ID).Msg("investor profile updated")
	return updated, nil
}

// List returns one page of investors matching filter, newest first.
func (s *InvestorService) List(ctx context.Context, filter ports.InvestorFilter) (*ports.Page[*domain.Investor], error) {
	filter.PageRequest = normalizePage(filter.PageRequest)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return newPage(items, total, filter.PageRequest), nil
}

func (s *InvestorService) cacheGet(ctx context.Context, id string, dst *domain.Investor) bool {
	return profileCacheGet(ctx, s.cache, s.log, kindInvestor, id, dst)
}

func (s *InvestorService) cacheFill(ctx context.Context, id string, doc *domain.Investor) {
	profileCacheFill(ctx, s.cache, s.log, kindInvestor, id, doc)
}

func (s *InvestorService) cacheReplace(ctx context.Context, doc *domain.Investor) {
	profileCacheReplace(ctx, s.cache, s.log, kindInvestor, doc.ID, doc)
}

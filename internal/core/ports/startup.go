package ports

import (
	"context"

	"github.com/vcplatform/marketplace/internal/core/domain"
)

// StartupFilter carries the public listing filters for startups.
type StartupFilter struct {
	Industries   []string // any-of match on industry
	Location     string   // case-insensitive substring
	FundingStage string   // exact match
	PageRequest
}

// StartupPatch is a partial update of a startup profile. Nil fields are kept.
type StartupPatch struct {
	CompanyName  *string
	Logo         *string
	Website      *string
	Description  *string
	Industry     *[]string
	Location     *string
	FoundedYear  *int
	TeamSize     *int
	FundingStage *domain.FundingStage
	FundingGoal  *float64
	PitchDeck    *string
	Video        *string
	Traction     *domain.Traction
	SocialMedia  *domain.SocialMedia
}

// StartupRepository defines persistence for startup profiles.
type StartupRepository interface {
	// Create returns domain.ErrStartupExists when the owner already has a profile.
	Create(ctx context.Context, s *domain.Startup) (*domain.Startup, error)
	FindByID(ctx context.Context, id string) (*domain.Startup, error)
	FindByOwner(ctx context.Context, userID string) (*domain.Startup, error)
	UpdateByOwner(ctx context.Context, userID string, patch StartupPatch) (*domain.Startup, error)
	List(ctx context.Context, filter StartupFilter) ([]*domain.Startup, int64, error)
}

// StartupService defines use-case operations for startup profiles.
type StartupService interface {
	Create(ctx context.Context, owner *domain.Principal, details domain.StartupDetails) (*domain.Startup, error)
	Get(ctx context.Context, id string) (*domain.Startup, error)
	Mine(ctx context.Context, owner *domain.Principal) (*domain.Startup, error)
	UpdateMine(ctx context.Context, owner *domain.Principal, patch StartupPatch) (*domain.Startup, error)
	List(ctx context.Context, filter StartupFilter) (*Page[*domain.Startup], error)
}

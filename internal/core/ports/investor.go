package ports

import (
	"context"

	"github.com/vcplatform/marketplace/internal/core/domain"
)

// InvestorFilter carries the public listing filters for investors.
type InvestorFilter struct {
	InvestorType        string   // exact match
	PreferredIndustries []string // any-of match
	PreferredStages     []string // any-of match
	Location            string   // case-insensitive substring
	PageRequest
}

// InvestorPatch is a partial update of an investor profile. Nil fields are kept.
type InvestorPatch struct {
	FirmName            *string
	Logo                *string
	Website             *string
	Description         *string
	InvestorType        *domain.InvestorType
	Location            *string
	FoundedYear         *int
	TeamSize            *int
	AUM                 *float64
	InvestmentThesis    *string
	InvestmentRange     *domain.InvestmentRange
	PreferredStages     *[]domain.FundingStage
	PreferredIndustries *[]string
	Portfolio           *[]domain.PortfolioCompany
	SocialMedia         *domain.SocialMedia
}

// InvestorRepository defines persistence for investor profiles.
type InvestorRepository interface {
	// Create returns domain.ErrInvestorExists when the owner already has a profile.
	Create(ctx context.Context, inv *domain.Investor) (*domain.Investor, error)
	FindByID(ctx context.Context, id string) (*domain.Investor, error)
	FindByOwner(ctx context.Context, userID string) (*domain.Investor, error)
	UpdateByOwner(ctx context.Context, userID string, patch InvestorPatch) (*domain.Investor, error)
	List(ctx context.Context, filter InvestorFilter) ([]*domain.Investor, int64, error)
}

// InvestorService defines use-case operations for investor profiles.
type InvestorService interface {
	Create(ctx context.Context, owner *domain.Principal, details domain.InvestorDetails) (*domain.Investor, error)
	Get(ctx context.Context, id string) (*domain.Investor, error)
	Mine(ctx context.Context, owner *domain.Principal) (*domain.Investor, error)
	UpdateMine(ctx context.Context, owner *domain.Principal, patch InvestorPatch) (*domain.Investor, error)
	List(ctx context.Context, filter InvestorFilter) (*Page[*domain.Investor], error)
}

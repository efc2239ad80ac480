package handler

import "github.com/vcplatform/marketplace/internal/core/domain"

// ErrorResponse is the standard error envelope returned on all 4xx/5xx responses.
type ErrorResponse struct {
	Message string `json:"message"`
}

type errorResponse = ErrorResponse

// --- Startup profiles ---

type createStartupRequest struct {
	CompanyName  string              `json:"companyName"  validate:"required"`
	Logo         string              `json:"logo"`
	Website      string              `json:"website"`
	Description  string              `json:"description"  validate:"required"`
	Industry     []string            `json:"industry"     validate:"required,min=1,dive,required"`
	Location     string              `json:"location"     validate:"required"`
	FoundedYear  int                 `json:"foundedYear"  validate:"required,gte=1800,lte=2100"`
	TeamSize     int                 `json:"teamSize"     validate:"required,gte=1"`
	FundingStage string              `json:"fundingStage" validate:"required,fundingstage"`
	FundingGoal  *float64            `json:"fundingGoal"  validate:"omitempty,gte=0"`
	PitchDeck    string              `json:"pitchDeck"`
	Video        string              `json:"video"`
	Traction     *domain.Traction    `json:"traction"`
	SocialMedia  *domain.SocialMedia `json:"socialMedia"`
}

type updateStartupRequest struct {
	CompanyName  *string             `json:"companyName"  validate:"omitempty,min=1"`
	Logo         *string             `json:"logo"`
	Website      *string             `json:"website"`
	Description  *string             `json:"description"  validate:"omitempty,min=1"`
	Industry     *[]string           `json:"industry"     validate:"omitempty,min=1,dive,required"`
	Location     *string             `json:"location"     validate:"omitempty,min=1"`
	FoundedYear  *int                `json:"foundedYear"  validate:"omitempty,gte=1800,lte=2100"`
	TeamSize     *int                `json:"teamSize"     validate:"omitempty,gte=1"`
	FundingStage *string             `json:"fundingStage" validate:"omitempty,fundingstage"`
	FundingGoal  *float64            `json:"fundingGoal"  validate:"omitempty,gte=0"`
	PitchDeck    *string             `json:"pitchDeck"`
	Video        *string             `json:"video"`
	Traction     *domain.Traction    `json:"traction"`
	SocialMedia  *domain.SocialMedia `json:"socialMedia"`
}

type startupListResponse struct {
	Items []*domain.Startup `json:"items"`
	Page  int               `json:"page"`
	Pages int               `json:"pages"`
	Total int64             `json:"total"`
}

// --- Investor profiles ---

type portfolioCompanyRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

type createInvestorRequest struct {
	FirmName            string                    `json:"firmName"            validate:"required"`
	Logo                string                    `json:"logo"`
	Website             string                    `json:"website"`
	Description         string                    `json:"description"         validate:"required"`
	InvestorType        string                    `json:"investorType"        validate:"required,investortype"`
	Location            string                    `json:"location"            validate:"required"`
	FoundedYear         *int                      `json:"foundedYear"         validate:"omitempty,gte=1800,lte=2100"`
	TeamSize            *int                      `json:"teamSize"            validate:"omitempty,gte=1"`
	AUM                 *float64                  `json:"aum"                 validate:"omitempty,gte=0"`
	InvestmentThesis    string                    `json:"investmentThesis"`
	InvestmentRange     *domain.InvestmentRange   `json:"investmentRange"`
	PreferredStages     []string                  `json:"preferredStages"     validate:"omitempty,dive,fundingstage"`
	PreferredIndustries []string                  `json:"preferredIndustries" validate:"omitempty,dive,required"`
	Portfolio           []portfolioCompanyRequest `json:"portfolio"           validate:"omitempty,dive"`
	SocialMedia         *domain.SocialMedia       `json:"socialMedia"`
}

type updateInvestorRequest struct {
	FirmName            *string                    `json:"firmName"            validate:"omitempty,min=1"`
	Logo                *string                    `json:"logo"`
	Website             *string                    `json:"website"`
	Description         *string                    `json:"description"         validate:"omitempty,min=1"`
	InvestorType        *string                    `json:"investorType"        validate:"omitempty,investortype"`
	Location            *string                    `json:"location"            validate:"omitempty,min=1"`
	FoundedYear         *int                       `json:"foundedYear"         validate:"omitempty,gte=1800,lte=2100"`
	TeamSize            *int                       `json:"teamSize"            validate:"omitempty,gte=1"`
	AUM                 *float64                   `json:"aum"                 validate:"omitempty,gte=0"`
	InvestmentThesis    *string                    `json:"investmentThesis"`
	InvestmentRange     *domain.InvestmentRange    `json:"investmentRange"`
	PreferredStages     *[]string                  `json:"preferredStages"     validate:"omitempty,dive,fundingstage"`
	PreferredIndustries *[]string                  `json:"preferredIndustries" validate:"omitempty,dive,required"`
	Portfolio           *[]portfolioCompanyRequest `json:"portfolio"           validate:"omitempty,dive"`
	SocialMedia         *domain.SocialMedia        `json:"socialMedia"`
}

type investorListResponse struct {
	Items []*domain.Investor `json:"items"`
	Page  int                `json:"page"`
	Pages int                `json:"pages"`
	Total int64              `json:"total"`
}

package handler

import (
	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
)

// --- Request → domain ---

func toStartupDetails(req createStartupRequest) domain.StartupDetails {
	d := domain.StartupDetails{
		CompanyName:  req.CompanyName,
		Logo:         req.Logo,
		Website:      req.Website,
		Description:  req.Description,
		Industry:     req.Industry,
		Location:     req.Location,
		FoundedYear:  req.FoundedYear,
		TeamSize:     req.TeamSize,
		FundingStage: domain.FundingStage(req.FundingStage),
		FundingGoal:  req.FundingGoal,
		PitchDeck:    req.PitchDeck,
		Video:        req.Video,
	}
	if req.Traction != nil {
		d.Traction = *req.Traction
	}
	if req.SocialMedia != nil {
		d.SocialMedia = *req.SocialMedia
	}
	return d
}

func toStartupPatch(req updateStartupRequest) ports.StartupPatch {
	patch := ports.StartupPatch{
		CompanyName: req.CompanyName,
		Logo:        req.Logo,
		Website:     req.Website,
		Description: req.Description,
		Industry:    req.Industry,
		Location:    req.Location,
		FoundedYear: req.FoundedYear,
		TeamSize:    req.TeamSize,
		FundingGoal: req.FundingGoal,
		PitchDeck:   req.PitchDeck,
		Video:       req.Video,
		Traction:    req.Traction,
		SocialMedia: req.SocialMedia,
	}
	if req.FundingStage != nil {
		stage := domain.FundingStage(*req.FundingStage)
		patch.FundingStage = &stage
	}
	return patch
}

func toInvestorDetails(req createInvestorRequest) domain.InvestorDetails {
	d := domain.InvestorDetails{
		FirmName:            req.FirmName,
		Logo:                req.Logo,
		Website:             req.Website,
		Description:         req.Description,
		InvestorType:        domain.InvestorType(req.InvestorType),
		Location:            req.Location,
		FoundedYear:         req.FoundedYear,
		TeamSize:            req.TeamSize,
		AUM:                 req.AUM,
		InvestmentThesis:    req.InvestmentThesis,
		PreferredStages:     toFundingStages(req.PreferredStages),
		PreferredIndustries: req.PreferredIndustries,
		Portfolio:           toPortfolio(req.Portfolio),
	}
	if req.InvestmentRange != nil {
		d.InvestmentRange = *req.InvestmentRange
	}
	if req.SocialMedia != nil {
		d.SocialMedia = *req.SocialMedia
	}
	return d
}

func toInvestorPatch(req updateInvestorRequest) ports.InvestorPatch {
	patch := ports.InvestorPatch{
		FirmName:            req.FirmName,
		Logo:                req.Logo,
		Website:             req.Website,
		Description:         req.Description,
		Location:            req.Location,
		FoundedYear:         req.FoundedYear,
		TeamSize:            req.TeamSize,
		AUM:                 req.AUM,
		InvestmentThesis:    req.InvestmentThesis,
		InvestmentRange:     req.InvestmentRange,
		PreferredIndustries: req.PreferredIndustries,
		SocialMedia:         req.SocialMedia,
	}
	if req.InvestorType != nil {
		t := domain.InvestorType(*req.InvestorType)
		patch.InvestorType = &t
	}
	if req.PreferredStages != nil {
		stages := toFundingStages(*req.PreferredStages)
		if stages == nil {
			stages = []domain.FundingStage{}
		}
		patch.PreferredStages = &stages
	}
	if req.Portfolio != nil {
		portfolio := toPortfolio(*req.Portfolio)
		if portfolio == nil {
			portfolio = []domain.PortfolioCompany{}
		}
		patch.Portfolio = &portfolio
	}
	return patch
}

func toFundingStages(in []string) []domain.FundingStage {
	if in == nil {
		return nil
	}
	out := make([]domain.FundingStage, len(in))
	for i, s := range in {
		out[i] = domain.FundingStage(s)
	}
	return out
}

func toPortfolio(in []portfolioCompanyRequest) []domain.PortfolioCompany {
	if in == nil {
		return nil
	}
	out := make([]domain.PortfolioCompany, len(in))
	for i, p := range in {
		out[i] = domain.PortfolioCompany{
			CompanyName: p.CompanyName,
			Website:     p.Website,
			Description: p.Description,
			Logo:        p.Logo,
		}
	}
	return out
}

// --- Service → response ---

func toStartupListResponse(p *ports.Page[*domain.Startup]) startupListResponse {
	return startupListResponse{Items: p.Items, Page: p.Page, Pages: p.Pages, Total: p.Total}
}

func toInvestorListResponse(p *ports.Page[*domain.Investor]) investorListResponse {
	return investorListResponse{Items: p.Items, Page: p.Page, Pages: p.Pages, Total: p.Total}
}

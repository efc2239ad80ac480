package domain

import "time"

// InvestorType classifies an investor profile.
type InvestorType string

const (
	InvestorAngel        InvestorType = "angel"
	InvestorVCFirm       InvestorType = "vc-firm"
	InvestorCorporate    InvestorType = "corporate"
	InvestorAccelerator  InvestorType = "accelerator"
	InvestorFamilyOffice InvestorType = "family-office"
	InvestorOther        InvestorType = "other"
)

// InvestorTypes lists every investor type.
var InvestorTypes = []InvestorType{
	InvestorAngel, InvestorVCFirm, InvestorCorporate, InvestorAccelerator, InvestorFamilyOffice, InvestorOther,
}

// Valid reports whether t is a known investor type.
func (t InvestorType) Valid() bool {
	for _, known := range InvestorTypes {
		if t == known {
			return true
		}
	}
	return false
}

// InvestmentRange is the cheque size an investor writes.
type InvestmentRange struct {
	Min *float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max *float64 `json:"max,omitempty" bson:"max,omitempty"`
}

// PortfolioCompany is a past investment listed on an investor profile.
type PortfolioCompany struct {
	CompanyName string `json:"companyName"           bson:"companyName"`
	Website     string `json:"website,omitempty"     bson:"website,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Logo        string `json:"logo,omitempty"        bson:"logo,omitempty"`
}

// InvestorDetails is the owner-editable part of an investor profile.
type InvestorDetails struct {
	FirmName            string             `json:"firmName"                   bson:"firmName"`
	Logo                string             `json:"logo,omitempty"             bson:"logo,omitempty"`
	Website             string             `json:"website,omitempty"          bson:"website,omitempty"`
	Description         string             `json:"description"                bson:"description"`
	InvestorType        InvestorType       `json:"investorType"               bson:"investorType"`
	Location            string             `json:"location"                   bson:"location"`
	FoundedYear         *int               `json:"foundedYear,omitempty"      bson:"foundedYear,omitempty"`
	TeamSize            *int               `json:"teamSize,omitempty"         bson:"teamSize,omitempty"`
	AUM                 *float64           `json:"aum,omitempty"              bson:"aum,omitempty"`
	InvestmentThesis    string             `json:"investmentThesis,omitempty" bson:"investmentThesis,omitempty"`
	InvestmentRange     InvestmentRange    `json:"investmentRange"            bson:"investmentRange"`
	PreferredStages     []FundingStage     `json:"preferredStages"            bson:"preferredStages"`
	PreferredIndustries []string           `json:"preferredIndustries"        bson:"preferredIndustries"`
	Portfolio           []PortfolioCompany `json:"portfolio"                  bson:"portfolio"`
	SocialMedia         SocialMedia        `json:"socialMedia"                bson:"socialMedia"`
}

// Investor is an investor's public profile, owned by exactly one investor user.
type Investor struct {
	ID     string `json:"_id"`
	UserID string `json:"userId"`
	InvestorDetails
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

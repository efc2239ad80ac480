package domain

import "time"

// Traction captures a startup's self-reported metrics.
type Traction struct {
	Revenue       *float64       `json:"revenue,omitempty"       bson:"revenue,omitempty"`
	Users         *int64         `json:"users,omitempty"         bson:"users,omitempty"`
	Growth        *float64       `json:"growth,omitempty"        bson:"growth,omitempty"`
	CustomMetrics map[string]any `json:"customMetrics,omitempty" bson:"customMetrics,omitempty"`
}

// StartupDetails is the owner-editable part of a startup profile.
type StartupDetails struct {
	CompanyName  string       `json:"companyName"           bson:"companyName"`
	Logo         string       `json:"logo,omitempty"        bson:"logo,omitempty"`
	Website      string       `json:"website,omitempty"     bson:"website,omitempty"`
	Description  string       `json:"description"           bson:"description"`
	Industry     []string     `json:"industry"              bson:"industry"`
	Location     string       `json:"location"              bson:"location"`
	FoundedYear  int          `json:"foundedYear"           bson:"foundedYear"`
	TeamSize     int          `json:"teamSize"              bson:"teamSize"`
	FundingStage FundingStage `json:"fundingStage"          bson:"fundingStage"`
	FundingGoal  *float64     `json:"fundingGoal,omitempty" bson:"fundingGoal,omitempty"`
	PitchDeck    string       `json:"pitchDeck,omitempty"   bson:"pitchDeck,omitempty"`
	Video        string       `json:"video,omitempty"       bson:"video,omitempty"`
	Traction     Traction     `json:"traction"              bson:"traction"`
	SocialMedia  SocialMedia  `json:"socialMedia"           bson:"socialMedia"`
}

// Startup is a startup's public profile, owned by exactly one startup user.
type Startup struct {
	ID     string `json:"_id"`
	UserID string `json:"userId"`
	StartupDetails
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package mongo

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vcplatform/marketplace/internal/core/ports"
)

// Filter and update builders shared by the profile repositories. They are
// pure so that query shapes can be tested without a server.

// containsFold matches s anywhere in the field, ignoring case. s is matched
// literally.
func containsFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func anyOf(values []string) bson.M {
	return bson.M{"$in": values}
}

func startupListFilter(f ports.StartupFilter) bson.M {
	filter := bson.M{}
	if len(f.Industries) > 0 {
		filter["industry"] = anyOf(f.Industries)
	}
	if f.Location != "" {
		filter["location"] = containsFold(f.Location)
	}
	if f.FundingStage != "" {
		filter["fundingStage"] = f.FundingStage
	}
	return filter
}

func investorListFilter(f ports.InvestorFilter) bson.M {
	filter := bson.M{}
	if f.InvestorType != "" {
		filter["investorType"] = f.InvestorType
	}
	if len(f.PreferredIndustries) > 0 {
		filter["preferredIndustries"] = anyOf(f.PreferredIndustries)
	}
	if len(f.PreferredStages) > 0 {
		filter["preferredStages"] = anyOf(f.PreferredStages)
	}
	if f.Location != "" {
		filter["location"] = containsFold(f.Location)
	}
	return filter
}

// listOptions sorts newest first and applies the page window.
func listOptions(p ports.PageRequest) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))
}

func startupPatchSet(p ports.StartupPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	setIf(set, "companyName", p.CompanyName)
	setIf(set, "logo", p.Logo)
	setIf(set, "website", p.Website)
	setIf(set, "description", p.Description)
	setIf(set, "industry", p.Industry)
	setIf(set, "location", p.Location)
	setIf(set, "foundedYear", p.FoundedYear)
	setIf(set, "teamSize", p.TeamSize)
	setIf(set, "fundingStage", p.FundingStage)
	setIf(set, "fundingGoal", p.FundingGoal)
	setIf(set, "pitchDeck", p.PitchDeck)
	setIf(set, "video", p.Video)
	setIf(set, "traction", p.Traction)
	setIf(set, "socialMedia", p.SocialMedia)
	return set
}

func investorPatchSet(p ports.InvestorPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	setIf(set, "firmName", p.FirmName)
	setIf(set, "logo", p.Logo)
	setIf(set, "website", p.Website)
	setIf(set, "description", p.Description)
	setIf(set, "investorType", p.InvestorType)
	setIf(set, "location", p.Location)
	setIf(set, "foundedYear", p.FoundedYear)
	setIf(set, "teamSize", p.TeamSize)
	setIf(set, "aum", p.AUM)
	setIf(set, "investmentThesis", p.InvestmentThesis)
	setIf(set, "investmentRange", p.InvestmentRange)
	setIf(set, "preferredStages", p.PreferredStages)
	setIf(set, "preferredIndustries", p.PreferredIndustries)
	setIf(set, "portfolio", p.Portfolio)
	setIf(set, "socialMedia", p.SocialMedia)
	return set
}

func setIf[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}

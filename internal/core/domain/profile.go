package domain

// FundingStage is the round a startup is raising, or that an investor targets.
type FundingStage string

const (
	StageIdea       FundingStage = "idea"
	StagePreSeed    FundingStage = "pre-seed"
	StageSeed       FundingStage = "seed"
	StageSeriesA    FundingStage = "series-a"
	StageSeriesB    FundingStage = "series-b"
	StageSeriesC    FundingStage = "series-c"
	StageLaterStage FundingStage = "later-stage"
)

// FundingStages lists every stage in pipeline order.
var FundingStages = []FundingStage{
	StageIdea, StagePreSeed, StageSeed, StageSeriesA, StageSeriesB, StageSeriesC, StageLaterStage,
}

// Valid reports whether s is a known funding stage.
func (s FundingStage) Valid() bool {
	for _, known := range FundingStages {
		if s == known {
			return true
		}
	}
	return false
}

// SocialMedia holds optional public profile links.
type SocialMedia struct {
	LinkedIn  string `json:"linkedin,omitempty"  bson:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"   bson:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"  bson:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}

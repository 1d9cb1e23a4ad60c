package risk

import (
	"time"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain"
)

const (
	AlertRapidBidding    = "rapidBidding"
	AlertBidJump         = "bidJump"
	AlertShillSuspicion  = "shillSuspicion"
	AlertNoviceHighValue = "noviceHighValue"
	AlertDeviceAnomaly   = "deviceAnomaly"
	AlertLastSecondBurst = "lastSecondBurst"
)

// Weights are tunable per deployment; zero value means "use defaults".
type Weights struct {
	RapidBidding    int32 `json:"rapidBidding" mapstructure:"rapidBidding"`
	BidJump         int32 `json:"bidJump" mapstructure:"bidJump"`
	ShillSuspicion  int32 `json:"shillSuspicion" mapstructure:"shillSuspicion"`
	NoviceHighValue int32 `json:"noviceHighValue" mapstructure:"noviceHighValue"`
	DeviceAnomaly   int32 `json:"deviceAnomaly" mapstructure:"deviceAnomaly"`
	LastSecondBurst int32 `json:"lastSecondBurst" mapstructure:"lastSecondBurst"`
}

func DefaultWeights() Weights {
	return Weights{
		RapidBidding:    30,
		BidJump:         25,
		ShillSuspicion:  40,
		NoviceHighValue: 20,
		DeviceAnomaly:   15,
		LastSecondBurst: 35,
	}
}

// Thresholds gate when each heuristic fires.
type Thresholds struct {
	RapidBidCount     int32         `json:"rapidBidCount" mapstructure:"rapidBidCount"`
	RapidBidWindow    time.Duration `json:"rapidBidWindow" mapstructure:"rapidBidWindow"`
	JumpRatio         float64       `json:"jumpRatio" mapstructure:"jumpRatio"`
	ShillSubScore     int32         `json:"shillSubScore" mapstructure:"shillSubScore"`
	NoviceBidCount    int32         `json:"noviceBidCount" mapstructure:"noviceBidCount"`
	HighValueAmount   string        `json:"highValueAmount" mapstructure:"highValueAmount"`
	MaxDevices        int32         `json:"maxDevices" mapstructure:"maxDevices"`
	FinalWindow       time.Duration `json:"finalWindow" mapstructure:"finalWindow"`
	FinalBurstCount   int32         `json:"finalBurstCount" mapstructure:"finalBurstCount"`
	HighRiskAggregate float64       `json:"highRiskAggregate" mapstructure:"highRiskAggregate"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		RapidBidCount:     5,
		RapidBidWindow:    60 * time.Second,
		JumpRatio:         0.5,
		ShillSubScore:     50,
		NoviceBidCount:    3,
		HighValueAmount:   "1000000",
		MaxDevices:        3,
		FinalWindow:       10 * time.Second,
		FinalBurstCount:   3,
		HighRiskAggregate: 70,
	}
}

// Assessment scores one bid event. The score is an uncapped weighted sum;
// only threshold comparisons consume it downstream. A high score never
// blocks the bid by itself.
type Assessment struct {
	RiskScore       int32    `json:"riskScore"`
	Alerts          []string `json:"alerts,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// BidEvent is the scorer's input: the attempt plus the auction context the
// engine already holds, so scoring needs no extra auction reads.
type BidEvent struct {
	AuctionId    domain.AuctionId
	BidderId     domain.BidderId
	Amount       string
	PreviousBid  string
	ScheduledEnd *time.Time
	Time         time.Time
}

type Scorer interface {
	// Score never fails the bid path; on collaborator errors it degrades to
	// an empty assessment and reports the error for logging only.
	Score(ctx.Ctx, *BidEvent) (*Assessment, error)
}

// CollusionFinding accumulates evidence that two or more bidders coordinate.
// Advisory only, never auto-blocking.
type CollusionFinding struct {
	AuctionId       domain.AuctionId    `json:"auctionId" bson:"auctionId"`
	Evidence        []string            `json:"evidence,omitempty" bson:"evidence,omitempty"`
	SuspectedGroups [][]domain.BidderId `json:"suspectedGroups,omitempty" bson:"suspectedGroups,omitempty"`
	CheckedAt       time.Time           `json:"checkedAt" bson:"checkedAt"`
}

type CollusionDetector interface {
	Detect(c ctx.Ctx, auctionId domain.AuctionId) (*CollusionFinding, error)
}

// FraudReport aggregates the risk picture of one auction after close.
type FraudReport struct {
	AuctionId   domain.AuctionId  `json:"auctionId" bson:"auctionId"`
	TotalBids   int32             `json:"totalBids" bson:"totalBids"`
	MaxRisk     int32             `json:"maxRisk" bson:"maxRisk"`
	AvgRisk     float64           `json:"avgRisk" bson:"avgRisk"`
	Alerts      []string          `json:"alerts,omitempty" bson:"alerts,omitempty"`
	Collusion   *CollusionFinding `json:"collusion,omitempty" bson:"collusion,omitempty"`
	HighRisk    bool              `json:"highRisk" bson:"highRisk"`
	GeneratedAt time.Time         `json:"generatedAt" bson:"generatedAt"`
}

type ReportRepo interface {
	FindOne(c ctx.Ctx, auctionId domain.AuctionId) (*FraudReport, error)
	Upsert(ctx.Ctx, *FraudReport) error
}

type Reporter interface {
	// Generate builds and persists the per-auction fraud report; fires the
	// authority notification when the aggregate crosses the high-risk bar.
	Generate(c ctx.Ctx, auctionId domain.AuctionId) (*FraudReport, error)
}

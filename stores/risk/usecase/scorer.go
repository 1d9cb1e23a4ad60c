package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/auction"
	"github.com/lelongx/goapi/domain/bidder"
	"github.com/lelongx/goapi/domain/risk"
)

const (
	recommendEnhancedVerification = "require enhanced verification"
	recommendManualReview         = "queue for manual review"

	shillSubScoreNoWins   = 30
	shillSubScoreNeverLed = 25
)

type ScorerCfg struct {
	BidRepo    auction.BidRepo
	BidderRepo bidder.Repo
	Weights    risk.Weights
	Thresholds risk.Thresholds
}

type scorerImpl struct {
	bidRepo    auction.BidRepo
	bidderRepo bidder.Repo
	weights    risk.Weights
	thresholds risk.Thresholds
	highValue  decimal.Decimal
}

func NewScorer(cfg *ScorerCfg) risk.Scorer {
	weights := cfg.Weights
	if weights == (risk.Weights{}) {
		weights = risk.DefaultWeights()
	}
	thresholds := cfg.Thresholds
	if thresholds == (risk.Thresholds{}) {
		thresholds = risk.DefaultThresholds()
	}
	highValue, err := domain.ParseAmount(thresholds.HighValueAmount)
	if err != nil {
		panic(err)
	}
	return &scorerImpl{
		bidRepo:    cfg.BidRepo,
		bidderRepo: cfg.BidderRepo,
		weights:    weights,
		thresholds: thresholds,
		highValue:  highValue,
	}
}

// Score evaluates every heuristic independently and sums the weights of the
// ones that fire. The sum is not capped. Collaborator failures degrade to
// skipping the affected heuristics; scoring never blocks a bid.
func (im *scorerImpl) Score(c ctx.Ctx, event *risk.BidEvent) (*risk.Assessment, error) {
	assessment := &risk.Assessment{}

	amount, err := domain.ParseAmount(event.Amount)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"amount": event.Amount,
		}).Error("unscorable bid amount")
		return assessment, err
	}

	auctionBids, err := im.bidRepo.FindAll(c,
		auction.BidWithAuctionId(event.AuctionId),
		auction.BidWithBidderId(event.BidderId),
	)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": event.AuctionId,
		}).Warn("bid history unavailable, velocity heuristics skipped")
		auctionBids = nil
	}

	im.scoreRapidBidding(event, auctionBids, assessment)
	im.scoreBidJump(c, event, amount, assessment)
	im.scoreFinalBurst(event, auctionBids, assessment)

	profile, err := im.bidderRepo.FindOne(c, bidder.ProfileId{Id: event.BidderId})
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"bidderId": event.BidderId,
		}).Warn("bidder profile unavailable, profile heuristics skipped")
		return assessment, nil
	}

	im.scoreShillPattern(profile, auctionBids, assessment)
	im.scoreNoviceHighValue(c, event, amount, assessment)
	im.scoreDeviceAnomaly(profile, assessment)

	return assessment, nil
}

// >= RapidBidCount bids inside RapidBidWindow fires the velocity alert.
func (im *scorerImpl) scoreRapidBidding(event *risk.BidEvent, bids []*auction.Bid, assessment *risk.Assessment) {
	windowStart := event.Time.Add(-im.thresholds.RapidBidWindow)
	recent := int32(1) // the bid being scored
	for _, b := range bids {
		if b.Time.After(windowStart) {
			recent++
		}
	}
	if recent >= im.thresholds.RapidBidCount {
		assessment.RiskScore += im.weights.RapidBidding
		assessment.Alerts = append(assessment.Alerts, risk.AlertRapidBidding)
	}
}

func (im *scorerImpl) scoreBidJump(c ctx.Ctx, event *risk.BidEvent, amount decimal.Decimal, assessment *risk.Assessment) {
	prev, err := domain.ParseAmount(event.PreviousBid)
	if err != nil || !prev.IsPositive() {
		return
	}
	jump, _ := amount.Sub(prev).Div(prev).Float64()
	if jump > im.thresholds.JumpRatio {
		assessment.RiskScore += im.weights.BidJump
		assessment.Alerts = append(assessment.Alerts, risk.AlertBidJump)
	}
}

func (im *scorerImpl) scoreFinalBurst(event *risk.BidEvent, bids []*auction.Bid, assessment *risk.Assessment) {
	if event.ScheduledEnd == nil {
		return
	}
	windowStart := event.ScheduledEnd.Add(-im.thresholds.FinalWindow)
	if event.Time.Before(windowStart) {
		return
	}
	burst := int32(1)
	for _, b := range bids {
		if b.Time.After(windowStart) {
			burst++
		}
	}
	if burst >= im.thresholds.FinalBurstCount {
		assessment.RiskScore += im.weights.LastSecondBurst
		assessment.Alerts = append(assessment.Alerts, risk.AlertLastSecondBurst)
		assessment.Recommendations = append(assessment.Recommendations, recommendManualReview)
	}
}

// Shill suspicion is a composite: sub-signals accumulate and the alert only
// fires when the combined sub-score crosses the configured bar.
func (im *scorerImpl) scoreShillPattern(profile *bidder.Profile, bids []*auction.Bid, assessment *risk.Assessment) {
	subScore := int32(0)

	if profile.AuctionsEntered > 5 && profile.AuctionsWon == 0 {
		subScore += shillSubScoreNoWins
	}

	// repeatedly bidding without ever holding the lead suggests price pumping
	if len(bids) >= 3 {
		neverLed := true
		for _, b := range bids {
			if b.Accepted {
				neverLed = false
				break
			}
		}
		if neverLed {
			subScore += shillSubScoreNeverLed
		}
	}

	if subScore > im.thresholds.ShillSubScore {
		assessment.RiskScore += im.weights.ShillSuspicion
		assessment.Alerts = append(assessment.Alerts, risk.AlertShillSuspicion)
		assessment.Recommendations = append(assessment.Recommendations, recommendManualReview)
	}
}

func (im *scorerImpl) scoreNoviceHighValue(c ctx.Ctx, event *risk.BidEvent, amount decimal.Decimal, assessment *risk.Assessment) {
	if !amount.GreaterThan(im.highValue) {
		return
	}
	history, err := im.bidRepo.Count(c, auction.BidWithBidderId(event.BidderId))
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"bidderId": event.BidderId,
		}).Warn("bidder history unavailable, novice heuristic skipped")
		return
	}
	if int32(history) < im.thresholds.NoviceBidCount {
		assessment.RiskScore += im.weights.NoviceHighValue
		assessment.Alerts = append(assessment.Alerts, risk.AlertNoviceHighValue)
		assessment.Recommendations = append(assessment.Recommendations, recommendEnhancedVerification)
	}
}

func (im *scorerImpl) scoreDeviceAnomaly(profile *bidder.Profile, assessment *risk.Assessment) {
	if int32(len(profile.Devices)) > im.thresholds.MaxDevices || profile.FlaggedLocation {
		assessment.RiskScore += im.weights.DeviceAnomaly
		assessment.Alerts = append(assessment.Alerts, risk.AlertDeviceAnomaly)
	}
}

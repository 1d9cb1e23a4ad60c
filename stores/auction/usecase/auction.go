package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/keylock"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/base/metrics"
	"github.com/lelongx/goapi/base/ptr"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/auction"
	"github.com/lelongx/goapi/domain/audit"
	"github.com/lelongx/goapi/domain/bidder"
	"github.com/lelongx/goapi/domain/compliance"
	"github.com/lelongx/goapi/domain/property"
	"github.com/lelongx/goapi/domain/risk"
	"github.com/lelongx/goapi/service/registry"
)

const (
	RejectReasonNotFound      = "AUCTION_NOT_FOUND"
	RejectReasonNotActive     = "AUCTION_NOT_ACTIVE"
	RejectReasonBidTooLow     = "BID_TOO_LOW"
	RejectReasonInvalidAmount = "INVALID_AMOUNT"

	// collaboratorTimeout bounds calls into compliance, eligibility and
	// registry so a stuck downstream cannot wedge an auction.
	collaboratorTimeout = 10 * time.Second
)

type AuctionUseCaseCfg struct {
	AuctionRepo auction.Repo
	BidRepo     auction.BidRepo
	Checker     compliance.Checker
	Verifier    bidder.Verifier
	Scorer      risk.Scorer
	Reporter    risk.Reporter
	Registry    registry.Client
	Sink        audit.Sink
	Notifier    auction.Notifier
	Metrics     metrics.Service
}

type impl struct {
	auctionRepo auction.Repo
	bidRepo     auction.BidRepo
	checker     compliance.Checker
	verifier    bidder.Verifier
	scorer      risk.Scorer
	reporter    risk.Reporter
	registry    registry.Client
	sink        audit.Sink
	notifier    auction.Notifier
	met         metrics.Service
	locks       *keylock.KeyLock
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	return &impl{
		auctionRepo: cfg.AuctionRepo,
		bidRepo:     cfg.BidRepo,
		checker:     cfg.Checker,
		verifier:    cfg.Verifier,
		scorer:      cfg.Scorer,
		reporter:    cfg.Reporter,
		registry:    cfg.Registry,
		sink:        cfg.Sink,
		notifier:    cfg.Notifier,
		met:         cfg.Metrics,
		locks:       keylock.New(),
	}
}

// Start runs the compliance battery and, on a clean outcome, creates the
// auction already active at the reserve price. No state is created when any
// predicate fails.
func (im *impl) Start(c bCtx.Ctx, prop *property.Property) (*auction.Auction, error) {
	cctx, cancel := bCtx.WithTimeout(c, collaboratorTimeout)
	outcome, err := im.checker.Evaluate(cctx, prop)
	cancel()
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"titleId": prop.TitleId,
		}).Error("compliance checker unavailable")
		return nil, err
	}

	im.sink.Append(c, &audit.Record{
		Type:    audit.RecordTypeCompliance,
		Action:  "auctionStartCheck",
		Detail:  prop.TitleId.String(),
		Payload: outcome,
	})

	if !outcome.Passed {
		im.bumpSum("auction.start.rejected", 1)
		return nil, &compliance.Rejected{Issues: outcome.Issues}
	}

	now := time.Now()
	a := &auction.Auction{
		Id:         domain.AuctionId(uuid.NewString()),
		Property:   *prop,
		Status:     auction.StatusActive,
		CurrentBid: prop.ReservePrice,
		StartedAt:  now,
	}

	if err := im.auctionRepo.Create(c, a); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"titleId": prop.TitleId,
		}).Error("failed to auctionRepo.Create")
		return nil, err
	}

	im.bumpSum("auction.started", 1)
	im.emitLifecycle(c, a.Id, "auctionStarted", fmt.Sprintf("reserve %s", a.CurrentBid))
	im.notifier.Notify(c, auction.Event{
		Type:      auction.EventTypeAuctionStarted,
		AuctionId: a.Id,
		TitleId:   a.Property.TitleId,
		Amount:    a.CurrentBid,
		Time:      now,
	})

	return a, nil
}

// PlaceBid runs the hard gates in order, short-circuiting on the first
// failure: auction active, amount strictly above the current bid, bidder
// eligible. Risk scoring follows as a soft signal only; it never blocks the
// bid. The validate-then-mutate section holds the auction's lock so two
// concurrent bids cannot both win against the same stale current bid.
func (im *impl) PlaceBid(c bCtx.Ctx, id domain.AuctionId, bidderId domain.BidderId, amount string) (*auction.PlaceBidResult, error) {
	amt, err := domain.ParseAmount(amount)
	if err != nil {
		return im.reject(c, id, bidderId, amount, RejectReasonInvalidAmount)
	}

	im.locks.Lock(id.String())
	defer im.locks.Unlock(id.String())

	a, err := im.auctionRepo.FindOne(c, auction.Id{Id: id})
	if err == domain.ErrNotFound {
		return im.reject(c, id, bidderId, amount, RejectReasonNotFound)
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("failed to auctionRepo.FindOne")
		return nil, err
	}

	if a.Status != auction.StatusActive {
		return im.reject(c, id, bidderId, amount, RejectReasonNotActive)
	}

	current, err := domain.ParseAmount(a.CurrentBid)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"currentBid": a.CurrentBid,
		}).Error("stored current bid unparsable")
		return nil, err
	}
	if !amt.GreaterThan(current) {
		return im.reject(c, id, bidderId, amount, RejectReasonBidTooLow)
	}

	cctx, cancel := bCtx.WithTimeout(c, collaboratorTimeout)
	eligibility, err := im.verifier.Evaluate(cctx, bidderId, amount)
	cancel()
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"bidderId": bidderId,
		}).Error("eligibility verifier unavailable")
		return nil, domain.ErrCollaboratorDown
	}
	if !eligibility.Approved {
		if eligibility.Reason == bidder.ReasonAmlFailed {
			im.sink.ReportSuspicious(c, &audit.SuspiciousActivity{
				BidderId: bidderId,
				Amount:   amount,
				Reason:   bidder.ReasonAmlFailed,
				Time:     time.Now(),
			})
			im.bumpSum("bid.aml_rejected", 1)
		}
		return im.reject(c, id, bidderId, amount, eligibility.Reason)
	}

	// soft signal only; a scoring failure degrades to score unknown
	assessment := im.score(c, a, bidderId, amount)

	im.assertMonotonic(a, amt, current)

	now := time.Now()
	patch := auction.Patchable{
		CurrentBid:    ptr.String(amount),
		LeadingBidder: &bidderId,
		BidCount:      ptr.Int32(a.BidCount + 1),
	}
	if err := im.auctionRepo.Update(c, a.ToId(), patch); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("failed to auctionRepo.Update")
		return nil, err
	}

	bid := &auction.Bid{
		AuctionId: id,
		BidderId:  bidderId,
		Amount:    amount,
		Accepted:  true,
		RiskScore: assessment.RiskScore,
		Alerts:    assessment.Alerts,
		Time:      now,
	}
	if err := im.bidRepo.Create(c, bid); err != nil {
		// auction state is already advanced; an audit gap is preferable to
		// rolling back an accepted bid
		c.WithFields(log.Fields{
			"err": err,
			"bid": *bid,
		}).Error("accepted bid record not persisted")
	}

	im.bumpSum("bid.accepted", 1)
	if im.met != nil {
		im.met.BumpHistogram("bid.risk_score", float64(assessment.RiskScore))
	}
	im.emitLifecycle(c, id, "bidAccepted", fmt.Sprintf("%s by %s", amount, bidderId))
	im.sink.Append(c, &audit.Record{
		Type:      audit.RecordTypeRisk,
		AuctionId: id,
		BidderId:  &bidderId,
		Action:    "bidScored",
		Payload:   assessment,
	})
	im.notifier.Notify(c, auction.Event{
		Type:      auction.EventTypeBidAccepted,
		AuctionId: id,
		TitleId:   a.Property.TitleId,
		Bidder:    &bidderId,
		Amount:    amount,
		Time:      now,
	})

	return &auction.PlaceBidResult{
		Accepted:  true,
		RiskScore: assessment.RiskScore,
		Alerts:    assessment.Alerts,
	}, nil
}

// Close is idempotent: unknown auctions and already-terminal auctions are
// tolerated silently. A winning bidder triggers the title-transfer filing;
// the fraud report is generated either way.
func (im *impl) Close(c bCtx.Ctx, id domain.AuctionId) error {
	im.locks.Lock(id.String())
	defer im.locks.Unlock(id.String())

	a, err := im.auctionRepo.FindOne(c, auction.Id{Id: id})
	if err == domain.ErrNotFound {
		return nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("failed to auctionRepo.FindOne")
		return err
	}
	if a.Status.IsTerminal() {
		return nil
	}

	now := time.Now()
	status := auction.StatusClosed
	if err := im.auctionRepo.Update(c, a.ToId(), auction.Patchable{
		Status:  &status,
		EndedAt: &now,
	}); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("failed to auctionRepo.Update")
		return err
	}

	if a.LeadingBidder != nil {
		im.fileTransfer(c, a)
	}

	if _, err := im.reporter.Generate(c, id); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("fraud report generation failed")
	}

	im.bumpSum("auction.closed", 1)
	im.emitLifecycle(c, id, "auctionClosed", fmt.Sprintf("final %s", a.CurrentBid))
	im.notifier.Notify(c, auction.Event{
		Type:      auction.EventTypeAuctionClosed,
		AuctionId: id,
		TitleId:   a.Property.TitleId,
		Winner:    a.LeadingBidder,
		Amount:    a.CurrentBid,
		Time:      now,
	})

	return nil
}

// Cancel aborts a non-terminal auction. Unlike Close it treats an unknown
// auction as an error, since cancellation is an explicit operator action.
func (im *impl) Cancel(c bCtx.Ctx, id domain.AuctionId, reason string) error {
	im.locks.Lock(id.String())
	defer im.locks.Unlock(id.String())

	a, err := im.auctionRepo.FindOne(c, auction.Id{Id: id})
	if err != nil {
		return err
	}
	if a.Status.IsTerminal() {
		return domain.ErrAuctionClosed
	}

	now := time.Now()
	status := auction.StatusCancelled
	if err := im.auctionRepo.Update(c, a.ToId(), auction.Patchable{
		Status:  &status,
		EndedAt: &now,
	}); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("failed to auctionRepo.Update")
		return err
	}

	im.bumpSum("auction.cancelled", 1)
	im.emitLifecycle(c, id, "auctionCancelled", reason)
	im.notifier.Notify(c, auction.Event{
		Type:      auction.EventTypeAuctionCancelled,
		AuctionId: id,
		TitleId:   a.Property.TitleId,
		Reason:    reason,
		Time:      now,
	})

	return nil
}

func (im *impl) Get(c bCtx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	return im.auctionRepo.FindOne(c, auction.Id{Id: id})
}

func (im *impl) FindAll(c bCtx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	return im.auctionRepo.FindAll(c, opts...)
}

func (im *impl) ListBids(c bCtx.Ctx, id domain.AuctionId, opts ...auction.BidFindAllOptionsFunc) ([]*auction.Bid, error) {
	opts = append(opts, auction.BidWithAuctionId(id))
	return im.bidRepo.FindAll(c, opts...)
}

// reject appends the rejection record and returns the reject outcome.
// Rejections are first-class results, never errors.
func (im *impl) reject(c bCtx.Ctx, id domain.AuctionId, bidderId domain.BidderId, amount, reason string) (*auction.PlaceBidResult, error) {
	bid := &auction.Bid{
		AuctionId:    id,
		BidderId:     bidderId,
		Amount:       amount,
		Accepted:     false,
		RejectReason: reason,
		Time:         time.Now(),
	}
	if err := im.bidRepo.Create(c, bid); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"bid": *bid,
		}).Error("rejected bid record not persisted")
	}
	im.bumpSum("bid.rejected", 1, "reason:"+reason)
	return &auction.PlaceBidResult{Accepted: false, RejectReason: reason}, nil
}

func (im *impl) score(c bCtx.Ctx, a *auction.Auction, bidderId domain.BidderId, amount string) *risk.Assessment {
	cctx, cancel := bCtx.WithTimeout(c, collaboratorTimeout)
	defer cancel()

	assessment, err := im.scorer.Score(cctx, &risk.BidEvent{
		AuctionId:    a.Id,
		BidderId:     bidderId,
		Amount:       amount,
		PreviousBid:  a.CurrentBid,
		ScheduledEnd: a.ScheduledEnd,
		Time:         time.Now(),
	})
	if err != nil || assessment == nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.Id,
			"bidderId":  bidderId,
		}).Warn("risk score unknown for bid")
		return &risk.Assessment{}
	}
	return assessment
}

// assertMonotonic fails loudly when the serialization contract is broken:
// an accepted amount at or below the current bid can only happen if two
// mutations ran concurrently against the same auction.
func (im *impl) assertMonotonic(a *auction.Auction, amt, current decimal.Decimal) {
	if !amt.GreaterThan(current) {
		panic(fmt.Sprintf("auction %s: accepted bid %s does not exceed current %s", a.Id, amt, current))
	}
}

func (im *impl) fileTransfer(c bCtx.Ctx, a *auction.Auction) {
	cctx, cancel := bCtx.WithTimeout(c, collaboratorTimeout)
	defer cancel()

	req := &registry.TransferRequest{
		TitleId:   a.Property.TitleId,
		FromOwner: a.Property.OwnerId,
		ToOwner:   *a.LeadingBidder,
		Price:     a.CurrentBid,
		AuctionId: a.Id,
	}
	if err := im.registry.FileTransfer(cctx, req); err != nil {
		// fire and forget: the filing can be replayed from the audit trail
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.Id,
			"titleId":   a.Property.TitleId,
		}).Error("title transfer filing failed")
	}
	im.sink.Append(c, &audit.Record{
		Type:      audit.RecordTypeLifecycle,
		AuctionId: a.Id,
		BidderId:  a.LeadingBidder,
		Action:    "titleTransferRequested",
		Detail:    fmt.Sprintf("%s at %s", a.Property.TitleId, a.CurrentBid),
	})
}

func (im *impl) emitLifecycle(c bCtx.Ctx, id domain.AuctionId, action, detail string) {
	im.sink.Append(c, &audit.Record{
		Type:      audit.RecordTypeLifecycle,
		AuctionId: id,
		Action:    action,
		Detail:    detail,
	})
}

func (im *impl) bumpSum(key string, val float64, tags ...string) {
	if im.met != nil {
		im.met.BumpSum(key, val, tags...)
	}
}

package usecase

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/auction"
	mAuction "github.com/lelongx/goapi/domain/auction/mocks"
	"github.com/lelongx/goapi/domain/audit"
	mAudit "github.com/lelongx/goapi/domain/audit/mocks"
	"github.com/lelongx/goapi/domain/bidder"
	mBidder "github.com/lelongx/goapi/domain/bidder/mocks"
	"github.com/lelongx/goapi/domain/compliance"
	mCompliance "github.com/lelongx/goapi/domain/compliance/mocks"
	"github.com/lelongx/goapi/domain/property"
	"github.com/lelongx/goapi/domain/risk"
	mRisk "github.com/lelongx/goapi/domain/risk/mocks"
	mRegistry "github.com/lelongx/goapi/service/registry/mocks"
)

type engineTestSuite struct {
	suite.Suite

	auctionRepo *mAuction.Repo
	bidRepo     *mAuction.BidRepo
	checker     *mCompliance.Checker
	verifier    *mBidder.Verifier
	scorer      *mRisk.Scorer
	reporter    *mRisk.Reporter
	registry    *mRegistry.Client
	sink        *mAudit.Sink
	notifier    *mAuction.Notifier

	engine auction.UseCase
}

func TestEngine(t *testing.T) {
	suite.Run(t, new(engineTestSuite))
}

func (s *engineTestSuite) SetupTest() {
	s.auctionRepo = &mAuction.Repo{}
	s.bidRepo = &mAuction.BidRepo{}
	s.checker = &mCompliance.Checker{}
	s.verifier = &mBidder.Verifier{}
	s.scorer = &mRisk.Scorer{}
	s.reporter = &mRisk.Reporter{}
	s.registry = &mRegistry.Client{}
	s.sink = &mAudit.Sink{}
	s.notifier = &mAuction.Notifier{}

	s.sink.On("Append", mock.Anything, mock.Anything).Return(nil)
	s.sink.On("ReportSuspicious", mock.Anything, mock.Anything).Return(nil)
	s.notifier.On("Notify", mock.Anything, mock.Anything)

	s.engine = New(&AuctionUseCaseCfg{
		AuctionRepo: s.auctionRepo,
		BidRepo:     s.bidRepo,
		Checker:     s.checker,
		Verifier:    s.verifier,
		Scorer:      s.scorer,
		Reporter:    s.reporter,
		Registry:    s.registry,
		Sink:        s.sink,
		Notifier:    s.notifier,
	})
}

func (s *engineTestSuite) prop() *property.Property {
	return &property.Property{
		Id:           "prop-1",
		TitleId:      "GRN 1234/2020",
		OwnerId:      "owner-1",
		Address:      "12 Jalan Ampang, Kuala Lumpur",
		Category:     property.CategoryResidential,
		ReservePrice: "500000",
	}
}

func (s *engineTestSuite) activeAuction() *auction.Auction {
	return &auction.Auction{
		Id:         "auction-1",
		Property:   *s.prop(),
		Status:     auction.StatusActive,
		CurrentBid: "500000",
		StartedAt:  time.Now().Add(-time.Hour),
	}
}

func (s *engineTestSuite) approve() {
	s.verifier.On("Evaluate", mock.Anything, mock.Anything, mock.Anything).
		Return(&bidder.Eligibility{Approved: true}, nil)
}

func (s *engineTestSuite) scoreZero() {
	s.scorer.On("Score", mock.Anything, mock.Anything).Return(&risk.Assessment{}, nil)
}

func (s *engineTestSuite) TestStartCreatesActiveAuctionAtReserve() {
	ctx := bCtx.Background()
	s.checker.On("Evaluate", mock.Anything, mock.Anything).
		Return(&compliance.Outcome{Passed: true}, nil)
	s.auctionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	a, err := s.engine.Start(ctx, s.prop())
	s.Require().NoError(err)
	s.Equal(auction.StatusActive, a.Status)
	s.Equal("500000", a.CurrentBid)
	s.NotEmpty(a.Id)
	s.Nil(a.LeadingBidder)
	s.auctionRepo.AssertCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *engineTestSuite) TestStartRejectedWhenComplianceFails() {
	ctx := bCtx.Background()
	s.checker.On("Evaluate", mock.Anything, mock.Anything).
		Return(&compliance.Outcome{Passed: false, Issues: []string{"reserve price must be positive"}}, nil)

	a, err := s.engine.Start(ctx, s.prop())
	s.Nil(a)

	var rejected *compliance.Rejected
	s.Require().True(xerrors.As(err, &rejected))
	s.Equal([]string{"reserve price must be positive"}, rejected.Issues)
	s.auctionRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *engineTestSuite) TestStartPropagatesCheckerOutage() {
	ctx := bCtx.Background()
	s.checker.On("Evaluate", mock.Anything, mock.Anything).
		Return(nil, domain.ErrCollaboratorDown)

	a, err := s.engine.Start(ctx, s.prop())
	s.Nil(a)
	s.Require().Error(err)
	s.auctionRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *engineTestSuite) TestPlaceBidAccepted() {
	ctx := bCtx.Background()
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(s.activeAuction(), nil)
	s.auctionRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.bidRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.approve()
	s.scorer.On("Score", mock.Anything, mock.Anything).
		Return(&risk.Assessment{RiskScore: 25, Alerts: []string{risk.AlertBidJump}}, nil)

	res, err := s.engine.PlaceBid(ctx, "auction-1", "bidder-1", "600000")
	s.Require().NoError(err)
	s.True(res.Accepted)
	s.Equal(int32(25), res.RiskScore)
	s.Equal([]string{risk.AlertBidJump}, res.Alerts)

	s.auctionRepo.AssertCalled(s.T(), "Update", mock.Anything, auction.Id{Id: "auction-1"}, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.CurrentBid != nil && *p.CurrentBid == "600000" &&
			p.LeadingBidder != nil && *p.LeadingBidder == "bidder-1" &&
			p.BidCount != nil && *p.BidCount == 1
	}))
	s.bidRepo.AssertCalled(s.T(), "Create", mock.Anything, mock.MatchedBy(func(b *auction.Bid) bool {
		return b.Accepted && b.Amount == "600000" && b.RiskScore == 25
	}))
}

func (s *engineTestSuite) TestPlaceBidRejectsEqualAmount() {
	ctx := bCtx.Background()
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(s.activeAuction(), nil)
	s.bidRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := s.engine.PlaceBid(ctx, "auction-1", "bidder-1", "500000")
	s.Require().NoError(err)
	s.False(res.Accepted)
	s.Equal(RejectReasonBidTooLow, res.RejectReason)

	s.auctionRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
	s.bidRepo.AssertCalled(s.T(), "Create", mock.Anything, mock.MatchedBy(func(b *auction.Bid) bool {
		return !b.Accepted && b.RejectReason == RejectReasonBidTooLow
	}))
}

func (s *engineTestSuite) TestPlaceBidUnknownAuction() {
	ctx := bCtx.Background()
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	s.bidRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := s.engine.PlaceBid(ctx, "nope", "bidder-1", "600000")
	s.Require().NoError(err)
	s.False(res.Accepted)
	s.Equal(RejectReasonNotFound, res.RejectReason)
}

func (s *engineTestSuite) TestPlaceBidClosedAuction() {
	ctx := bCtx.Background()
	a := s.activeAuction()
	a.Status = auction.StatusClosed
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(a, nil)
	s.bidRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := s.engine.PlaceBid(ctx, "auction-1", "bidder-1", "600000")
	s.Require().NoError(err)
	s.False(res.Accepted)
	s.Equal(RejectReasonNotActive, res.RejectReason)
}

func (s *engineTestSuite) TestPlaceBidInvalidAmount() {
	ctx := bCtx.Background()
	s.bidRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := s.engine.PlaceBid(ctx, "auction-1", "bidder-1", "not-a-number")
	s.Require().NoError(err)
	s.False(res.Accepted)
	s.Equal(RejectReasonInvalidAmount, res.RejectReason)
	s.auctionRepo.AssertNotCalled(s.T(), "FindOne", mock.Anything, mock.Anything)
}

func (s *engineTestSuite) TestPlaceBidVerifierOutage() {
	ctx := bCtx.Background()
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(s.activeAuction(), nil)
	s.verifier.On("Evaluate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, xerrors.New("connection refused"))

	res, err := s.engine.PlaceBid(ctx, "auction-1", "bidder-1", "600000")
	s.Nil(res)
	s.Require().True(xerrors.Is(err, domain.ErrCollaboratorDown))
	s.bidRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *engineTestSuite) TestPlaceBidAmlRejectionReportsOnce() {
	ctx := bCtx.Background()
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(s.activeAuction(), nil)
	s.bidRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.verifier.On("Evaluate", mock.Anything, mock.Anything, mock.Anything).
		Return(&bidder.Eligibility{Approved: false, Reason: bidder.ReasonAmlFailed}, nil)

	res, err := s.engine.PlaceBid(ctx, "auction-1", "bidder-1", "2000000")
	s.Require().NoError(err)
	s.False(res.Accepted)
	s.Equal(bidder.ReasonAmlFailed, res.RejectReason)

	s.sink.AssertNumberOfCalls(s.T(), "ReportSuspicious", 1)
	s.sink.AssertCalled(s.T(), "ReportSuspicious", mock.Anything, mock.MatchedBy(func(a *audit.SuspiciousActivity) bool {
		return a.BidderId == "bidder-1" && a.Amount == "2000000" && a.Reason == bidder.ReasonAmlFailed
	}))
	s.auctionRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *engineTestSuite) TestPlaceBidNotVerifiedRejection() {
	ctx := bCtx.Background()
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(s.activeAuction(), nil)
	s.bidRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.verifier.On("Evaluate", mock.Anything, mock.Anything, mock.Anything).
		Return(&bidder.Eligibility{Approved: false, Reason: bidder.ReasonNotVerified}, nil)

	res, err := s.engine.PlaceBid(ctx, "auction-1", "bidder-1", "600000")
	s.Require().NoError(err)
	s.False(res.Accepted)
	s.Equal(bidder.ReasonNotVerified, res.RejectReason)
	s.sink.AssertNotCalled(s.T(), "ReportSuspicious", mock.Anything, mock.Anything)
}

// Risk scoring is advisory only. A bid carrying every alert and a score far
// past any reporting threshold is still recorded and accepted as-is.
func (s *engineTestSuite) TestPlaceBidMaximalRiskStillAccepted() {
	ctx := bCtx.Background()
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(s.activeAuction(), nil)
	s.auctionRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.bidRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.approve()
	allAlerts := []string{
		risk.AlertRapidBidding,
		risk.AlertBidJump,
		risk.AlertShillSuspicion,
		risk.AlertNoviceHighValue,
		risk.AlertDeviceAnomaly,
		risk.AlertLastSecondBurst,
	}
	s.scorer.On("Score", mock.Anything, mock.Anything).
		Return(&risk.Assessment{RiskScore: 185, Alerts: allAlerts}, nil)

	res, err := s.engine.PlaceBid(ctx, "auction-1", "bidder-1", "600000")
	s.Require().NoError(err)
	s.True(res.Accepted)
	s.Equal(int32(185), res.RiskScore)
	s.Equal(allAlerts, res.Alerts)
	s.bidRepo.AssertCalled(s.T(), "Create", mock.Anything, mock.MatchedBy(func(b *auction.Bid) bool {
		return b.Accepted && b.RiskScore == 185
	}))
}

func (s *engineTestSuite) TestPlaceBidScorerFailureDoesNotBlock() {
	ctx := bCtx.Background()
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(s.activeAuction(), nil)
	s.auctionRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.bidRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.approve()
	s.scorer.On("Score", mock.Anything, mock.Anything).Return(nil, xerrors.New("timeout"))

	res, err := s.engine.PlaceBid(ctx, "auction-1", "bidder-1", "600000")
	s.Require().NoError(err)
	s.True(res.Accepted)
	s.Equal(int32(0), res.RiskScore)
	s.Empty(res.Alerts)
}

// Concurrent bids against one auction must serialize: every accepted bid
// strictly exceeds the one before it and the final state reflects the
// highest amount.
func (s *engineTestSuite) TestConcurrentBidsSerialize() {
	ctx := bCtx.Background()

	var mu sync.Mutex
	state := s.activeAuction()

	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(func(bCtx.Ctx, auction.Id) *auction.Auction {
		mu.Lock()
		defer mu.Unlock()
		snapshot := *state
		return &snapshot
	}, nil)
	s.auctionRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(func(_ bCtx.Ctx, _ auction.Id, p auction.Patchable) error {
		mu.Lock()
		defer mu.Unlock()
		state.CurrentBid = *p.CurrentBid
		state.LeadingBidder = p.LeadingBidder
		state.BidCount = *p.BidCount
		return nil
	})
	s.bidRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.approve()
	s.scoreZero()

	var wg sync.WaitGroup
	accepted := make([]bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			amount := fmt.Sprintf("%d", 510000+i*10000)
			res, err := s.engine.PlaceBid(ctx, "auction-1", domain.BidderId(fmt.Sprintf("bidder-%d", i)), amount)
			s.NoError(err)
			accepted[i] = res.Accepted
		}(i)
	}
	wg.Wait()

	// the highest amount always lands regardless of interleaving
	s.True(accepted[19])
	s.Equal("700000", state.CurrentBid)
	s.Require().NotNil(state.LeadingBidder)
	s.Equal(domain.BidderId("bidder-19"), *state.LeadingBidder)
}

func (s *engineTestSuite) TestCloseHappyPath() {
	ctx := bCtx.Background()
	winner := domain.BidderId("bidder-9")
	a := s.activeAuction()
	a.CurrentBid = "750000"
	a.LeadingBidder = &winner
	a.BidCount = 3

	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(a, nil)
	s.auctionRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.registry.On("FileTransfer", mock.Anything, mock.Anything).Return(nil)
	s.reporter.On("Generate", mock.Anything, mock.Anything).Return(&risk.FraudReport{}, nil)

	s.Require().NoError(s.engine.Close(ctx, "auction-1"))

	s.auctionRepo.AssertCalled(s.T(), "Update", mock.Anything, auction.Id{Id: "auction-1"}, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.Status != nil && *p.Status == auction.StatusClosed && p.EndedAt != nil
	}))
	s.registry.AssertCalled(s.T(), "FileTransfer", mock.Anything, mock.MatchedBy(func(r interface{}) bool {
		return r != nil
	}))
	s.reporter.AssertNumberOfCalls(s.T(), "Generate", 1)
}

func (s *engineTestSuite) TestCloseWithoutBidsSkipsTransfer() {
	ctx := bCtx.Background()
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(s.activeAuction(), nil)
	s.auctionRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.reporter.On("Generate", mock.Anything, mock.Anything).Return(&risk.FraudReport{}, nil)

	s.Require().NoError(s.engine.Close(ctx, "auction-1"))
	s.registry.AssertNotCalled(s.T(), "FileTransfer", mock.Anything, mock.Anything)
	s.reporter.AssertNumberOfCalls(s.T(), "Generate", 1)
}

func (s *engineTestSuite) TestCloseIsIdempotent() {
	ctx := bCtx.Background()
	a := s.activeAuction()
	a.Status = auction.StatusClosed
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(a, nil)

	s.Require().NoError(s.engine.Close(ctx, "auction-1"))
	s.auctionRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
	s.reporter.AssertNotCalled(s.T(), "Generate", mock.Anything, mock.Anything)
}

func (s *engineTestSuite) TestCloseUnknownAuctionIsNoop() {
	ctx := bCtx.Background()
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	s.Require().NoError(s.engine.Close(ctx, "nope"))
}

func (s *engineTestSuite) TestCancelActiveAuction() {
	ctx := bCtx.Background()
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(s.activeAuction(), nil)
	s.auctionRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	s.Require().NoError(s.engine.Cancel(ctx, "auction-1", "court order"))
	s.auctionRepo.AssertCalled(s.T(), "Update", mock.Anything, auction.Id{Id: "auction-1"}, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.Status != nil && *p.Status == auction.StatusCancelled
	}))
}

func (s *engineTestSuite) TestCancelTerminalAuction() {
	ctx := bCtx.Background()
	a := s.activeAuction()
	a.Status = auction.StatusCancelled
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(a, nil)

	err := s.engine.Cancel(ctx, "auction-1", "court order")
	s.Require().True(xerrors.Is(err, domain.ErrAuctionClosed))
}

func (s *engineTestSuite) TestCancelUnknownAuction() {
	ctx := bCtx.Background()
	s.auctionRepo.On("FindOne", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	err := s.engine.Cancel(ctx, "nope", "court order")
	s.Require().True(xerrors.Is(err, domain.ErrNotFound))
}

func (s *engineTestSuite) TestListBidsScopesToAuction() {
	ctx := bCtx.Background()
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return([]*auction.Bid{}, nil)

	_, err := s.engine.ListBids(ctx, "auction-1", auction.BidWithAccepted(true))
	s.Require().NoError(err)
}

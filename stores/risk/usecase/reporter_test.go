package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain/auction"
	mAuction "github.com/lelongx/goapi/domain/auction/mocks"
	"github.com/lelongx/goapi/domain/audit"
	mAudit "github.com/lelongx/goapi/domain/audit/mocks"
	"github.com/lelongx/goapi/domain/risk"
	mRisk "github.com/lelongx/goapi/domain/risk/mocks"
)

type reporterTestSuite struct {
	suite.Suite

	bidRepo    *mAuction.BidRepo
	reportRepo *mRisk.ReportRepo
	collusion  *mRisk.CollusionDetector
	sink       *mAudit.Sink
	reporter   risk.Reporter
}

func TestReporter(t *testing.T) {
	suite.Run(t, new(reporterTestSuite))
}

func (s *reporterTestSuite) SetupTest() {
	s.bidRepo = &mAuction.BidRepo{}
	s.reportRepo = &mRisk.ReportRepo{}
	s.collusion = &mRisk.CollusionDetector{}
	s.sink = &mAudit.Sink{}

	s.sink.On("Append", mock.Anything, mock.Anything).Return(nil)

	s.reporter = NewReporter(&ReporterCfg{
		BidRepo:    s.bidRepo,
		ReportRepo: s.reportRepo,
		Collusion:  s.collusion,
		Sink:       s.sink,
	})
}

func (s *reporterTestSuite) TestAggregatesBidRisk() {
	bids := []*auction.Bid{
		{AuctionId: "auction-1", RiskScore: 0},
		{AuctionId: "auction-1", RiskScore: 30, Alerts: []string{risk.AlertRapidBidding}},
		{AuctionId: "auction-1", RiskScore: 60, Alerts: []string{risk.AlertRapidBidding, risk.AlertBidJump}},
	}
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything).Return(bids, nil)
	s.collusion.On("Detect", mock.Anything, mock.Anything).Return(&risk.CollusionFinding{}, nil)
	s.reportRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	report, err := s.reporter.Generate(bCtx.Background(), "auction-1")
	s.Require().NoError(err)
	s.Equal(int32(3), report.TotalBids)
	s.Equal(int32(60), report.MaxRisk)
	s.Equal(float64(30), report.AvgRisk)
	s.ElementsMatch([]string{risk.AlertRapidBidding, risk.AlertBidJump}, report.Alerts)
	s.False(report.HighRisk)
	s.Nil(report.Collusion)

	s.reportRepo.AssertCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
	s.sink.AssertNumberOfCalls(s.T(), "Append", 1)
}

func (s *reporterTestSuite) TestHighRiskNotifiesAuthority() {
	bids := []*auction.Bid{
		{AuctionId: "auction-1", RiskScore: 85, Alerts: []string{risk.AlertShillSuspicion}},
	}
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything).Return(bids, nil)
	s.collusion.On("Detect", mock.Anything, mock.Anything).Return(&risk.CollusionFinding{}, nil)
	s.reportRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	report, err := s.reporter.Generate(bCtx.Background(), "auction-1")
	s.Require().NoError(err)
	s.True(report.HighRisk)

	s.sink.AssertNumberOfCalls(s.T(), "Append", 2)
	s.sink.AssertCalled(s.T(), "Append", mock.Anything, mock.MatchedBy(func(r *audit.Record) bool {
		return r.Action == "authorityNotified"
	}))
}

func (s *reporterTestSuite) TestAttachesCollusionEvidence() {
	bids := []*auction.Bid{
		{AuctionId: "auction-1", BidderId: "alice"},
		{AuctionId: "auction-1", BidderId: "bob"},
	}
	finding := &risk.CollusionFinding{
		AuctionId: "auction-1",
		Evidence:  []string{"bidders alice and bob share payment instrument"},
	}
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything).Return(bids, nil)
	s.collusion.On("Detect", mock.Anything, mock.Anything).Return(finding, nil)
	s.reportRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	report, err := s.reporter.Generate(bCtx.Background(), "auction-1")
	s.Require().NoError(err)
	s.Require().NotNil(report.Collusion)
	s.Equal(finding.Evidence, report.Collusion.Evidence)
}

func (s *reporterTestSuite) TestEmptyAuctionStillReports() {
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything).Return([]*auction.Bid{}, nil)
	s.collusion.On("Detect", mock.Anything, mock.Anything).Return(&risk.CollusionFinding{}, nil)
	s.reportRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	report, err := s.reporter.Generate(bCtx.Background(), "auction-1")
	s.Require().NoError(err)
	s.Equal(int32(0), report.TotalBids)
	s.Equal(float64(0), report.AvgRisk)
	s.False(report.HighRisk)
}

package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/auction"
	mAuction "github.com/lelongx/goapi/domain/auction/mocks"
	"github.com/lelongx/goapi/domain/bidder"
	mBidder "github.com/lelongx/goapi/domain/bidder/mocks"
	"github.com/lelongx/goapi/domain/risk"
)

type collusionTestSuite struct {
	suite.Suite

	bidRepo    *mAuction.BidRepo
	bidderRepo *mBidder.Repo
	detector   risk.CollusionDetector
}

func TestCollusion(t *testing.T) {
	suite.Run(t, new(collusionTestSuite))
}

func (s *collusionTestSuite) SetupTest() {
	s.bidRepo = &mAuction.BidRepo{}
	s.bidderRepo = &mBidder.Repo{}
	s.detector = NewCollusionDetector(&CollusionCfg{
		BidRepo:    s.bidRepo,
		BidderRepo: s.bidderRepo,
	})
}

func (s *collusionTestSuite) profile(id domain.BidderId) *bidder.Profile {
	return &bidder.Profile{Id: id, Devices: []domain.DeviceId{domain.DeviceId("device-" + id)}}
}

// alternating a/b bids a few seconds apart
func alternatingBids(a, b domain.BidderId, n int, gap time.Duration) []*auction.Bid {
	base := time.Now().Add(-time.Hour)
	bids := make([]*auction.Bid, n)
	for i := range bids {
		who := a
		if i%2 == 1 {
			who = b
		}
		bids[i] = &auction.Bid{
			AuctionId: "auction-1",
			BidderId:  who,
			Accepted:  true,
			Time:      base.Add(time.Duration(i) * gap),
		}
	}
	return bids
}

func (s *collusionTestSuite) TestTightAlternationFlagsPair() {
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).
		Return(alternatingBids("alice", "bob", 6, 5*time.Second), nil)
	s.bidderRepo.On("FindOne", mock.Anything, bidder.ProfileId{Id: "alice"}).Return(s.profile("alice"), nil)
	s.bidderRepo.On("FindOne", mock.Anything, bidder.ProfileId{Id: "bob"}).Return(s.profile("bob"), nil)

	finding, err := s.detector.Detect(bCtx.Background(), "auction-1")
	s.Require().NoError(err)
	s.NotEmpty(finding.Evidence)
	s.Require().Len(finding.SuspectedGroups, 1)
	s.Equal([]domain.BidderId{"alice", "bob"}, finding.SuspectedGroups[0])
}

func (s *collusionTestSuite) TestSlowAlternationIsClean() {
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).
		Return(alternatingBids("alice", "bob", 6, 10*time.Minute), nil)
	s.bidderRepo.On("FindOne", mock.Anything, bidder.ProfileId{Id: "alice"}).Return(s.profile("alice"), nil)
	s.bidderRepo.On("FindOne", mock.Anything, bidder.ProfileId{Id: "bob"}).Return(s.profile("bob"), nil)

	finding, err := s.detector.Detect(bCtx.Background(), "auction-1")
	s.Require().NoError(err)
	s.Empty(finding.Evidence)
	s.Empty(finding.SuspectedGroups)
}

func (s *collusionTestSuite) TestSharedDeviceFlagsPair() {
	bids := alternatingBids("alice", "bob", 2, time.Hour)
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return(bids, nil)

	shared := domain.DeviceId("device-x")
	pa := s.profile("alice")
	pa.Devices = append(pa.Devices, shared)
	pb := s.profile("bob")
	pb.Devices = append(pb.Devices, shared)
	s.bidderRepo.On("FindOne", mock.Anything, bidder.ProfileId{Id: "alice"}).Return(pa, nil)
	s.bidderRepo.On("FindOne", mock.Anything, bidder.ProfileId{Id: "bob"}).Return(pb, nil)

	finding, err := s.detector.Detect(bCtx.Background(), "auction-1")
	s.Require().NoError(err)
	s.Require().Len(finding.SuspectedGroups, 1)
	s.Contains(finding.Evidence[0], "device-x")
}

func (s *collusionTestSuite) TestSharedPaymentInstrument() {
	bids := alternatingBids("alice", "bob", 2, time.Hour)
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return(bids, nil)

	pa := s.profile("alice")
	pa.PaymentHash = "pay-1"
	pb := s.profile("bob")
	pb.PaymentHash = "pay-1"
	s.bidderRepo.On("FindOne", mock.Anything, bidder.ProfileId{Id: "alice"}).Return(pa, nil)
	s.bidderRepo.On("FindOne", mock.Anything, bidder.ProfileId{Id: "bob"}).Return(pb, nil)

	finding, err := s.detector.Detect(bCtx.Background(), "auction-1")
	s.Require().NoError(err)
	s.Require().Len(finding.SuspectedGroups, 1)
	s.Contains(finding.Evidence[0], "payment instrument")
}

func (s *collusionTestSuite) TestLinksCollapseIntoOneGroup() {
	// alice-bob share a device, bob-carol share payment; all three connect
	bids := []*auction.Bid{
		{AuctionId: "auction-1", BidderId: "alice", Time: time.Now().Add(-3 * time.Hour)},
		{AuctionId: "auction-1", BidderId: "bob", Time: time.Now().Add(-2 * time.Hour)},
		{AuctionId: "auction-1", BidderId: "carol", Time: time.Now().Add(-time.Hour)},
	}
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return(bids, nil)

	pa := s.profile("alice")
	pb := s.profile("bob")
	pc := s.profile("carol")
	pa.Devices = append(pa.Devices, "device-x")
	pb.Devices = append(pb.Devices, "device-x")
	pb.PaymentHash = "pay-1"
	pc.PaymentHash = "pay-1"
	s.bidderRepo.On("FindOne", mock.Anything, bidder.ProfileId{Id: "alice"}).Return(pa, nil)
	s.bidderRepo.On("FindOne", mock.Anything, bidder.ProfileId{Id: "bob"}).Return(pb, nil)
	s.bidderRepo.On("FindOne", mock.Anything, bidder.ProfileId{Id: "carol"}).Return(pc, nil)

	finding, err := s.detector.Detect(bCtx.Background(), "auction-1")
	s.Require().NoError(err)
	s.Require().Len(finding.SuspectedGroups, 1)
	s.Equal([]domain.BidderId{"alice", "bob", "carol"}, finding.SuspectedGroups[0])
}

func (s *collusionTestSuite) TestSingleBidderIsClean() {
	bids := []*auction.Bid{{AuctionId: "auction-1", BidderId: "alice", Time: time.Now()}}
	s.bidRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return(bids, nil)

	finding, err := s.detector.Detect(bCtx.Background(), "auction-1")
	s.Require().NoError(err)
	s.Empty(finding.Evidence)
	s.bidderRepo.AssertNotCalled(s.T(), "FindOne", mock.Anything, mock.Anything)
}

package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/audit"
	mAudit "github.com/lelongx/goapi/domain/audit/mocks"
)

func TestTrailFindAll(t *testing.T) {
	req := require.New(t)

	records := []*audit.Record{
		{Type: audit.RecordTypeLifecycle, AuctionId: "auc-1", Action: "auctionStarted", Time: time.Unix(100, 0)},
		{Type: audit.RecordTypeRisk, AuctionId: "auc-1", Action: "bidScored", Time: time.Unix(200, 0)},
	}
	store := &mAudit.Store{}
	store.On("FindAll", mock.Anything, domain.AuctionId("auc-1")).Return(records, nil)

	trail := NewTrail(&TrailCfg{Store: store})
	res, err := trail.FindAll(bCtx.Background(), "auc-1")
	req.NoError(err)
	req.Equal(records, res)
}

func TestTrailFindSuspicious(t *testing.T) {
	req := require.New(t)

	activities := []*audit.SuspiciousActivity{
		{BidderId: "bidder-1", Amount: "2000000", Reason: "amlThresholdExceeded", Time: time.Unix(300, 0)},
	}
	store := &mAudit.Store{}
	store.On("FindSuspicious", mock.Anything, domain.BidderId("bidder-1")).Return(activities, nil)

	trail := NewTrail(&TrailCfg{Store: store})
	res, err := trail.FindSuspicious(bCtx.Background(), "bidder-1")
	req.NoError(err)
	req.Equal(activities, res)
}

func TestTrailPropagatesStoreError(t *testing.T) {
	req := require.New(t)

	store := &mAudit.Store{}
	store.On("FindAll", mock.Anything, mock.Anything).Return(nil, xerrors.New("mongo down"))

	trail := NewTrail(&TrailCfg{Store: store})
	_, err := trail.FindAll(bCtx.Background(), "auc-err")
	req.Error(err)
}

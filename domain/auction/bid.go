package auction

import (
	"time"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain"
)

// Bid is one attempted price offer. Records are append-only; rejected bids
// are kept for audit and risk history and never mutate auction state.
type Bid struct {
	AuctionId    domain.AuctionId `json:"auctionId" bson:"auctionId"`
	BidderId     domain.BidderId  `json:"bidderId" bson:"bidderId"`
	Amount       string           `json:"amount" bson:"amount"`
	Accepted     bool             `json:"accepted" bson:"accepted"`
	RiskScore    int32            `json:"riskScore" bson:"riskScore"`
	Alerts       []string         `json:"alerts,omitempty" bson:"alerts,omitempty"`
	RejectReason string           `json:"rejectReason,omitempty" bson:"rejectReason,omitempty"`
	Time         time.Time        `json:"time" bson:"time"`
}

type BidFindAllOptions struct {
	SortBy    *string           `bson:"-"`
	SortDir   *domain.SortDir   `bson:"-"`
	Offset    *int32            `bson:"-"`
	Limit     *int32            `bson:"-"`
	AuctionId *domain.AuctionId `bson:"-"`
	BidderId  *domain.BidderId  `bson:"-"`
	Accepted  *bool             `bson:"-"`
	TimeGT    *time.Time        `bson:"-"`
	TimeLT    *time.Time        `bson:"-"`
}

type BidFindAllOptionsFunc func(*BidFindAllOptions) error

func GetBidFindAllOptions(opts ...BidFindAllOptionsFunc) (BidFindAllOptions, error) {
	res := BidFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func BidWithSort(sortby string, sortdir domain.SortDir) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.SortBy = &sortby
		options.SortDir = &sortdir
		return nil
	}
}

func BidWithPagination(offset int32, limit int32) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func BidWithAuctionId(id domain.AuctionId) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.AuctionId = &id
		return nil
	}
}

func BidWithBidderId(id domain.BidderId) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.BidderId = &id
		return nil
	}
}

func BidWithAccepted(accepted bool) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.Accepted = &accepted
		return nil
	}
}

func BidWithTimeGT(t time.Time) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.TimeGT = &t
		return nil
	}
}

func BidWithTimeLT(t time.Time) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.TimeLT = &t
		return nil
	}
}

type BidRepo interface {
	FindAll(ctx.Ctx, ...BidFindAllOptionsFunc) ([]*Bid, error)
	Count(ctx.Ctx, ...BidFindAllOptionsFunc) (int, error)
	Create(ctx.Ctx, *Bid) error
}

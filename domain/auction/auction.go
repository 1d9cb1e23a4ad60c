package auction

import (
	"time"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/property"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusCancelled
}

// Auction tracks one property's sale process. CurrentBid is a decimal string;
// it starts at the reserve price and only ever increases. Mutation goes
// through the lifecycle usecase exclusively.
type Auction struct {
	Id            domain.AuctionId  `json:"id" bson:"id"`
	Property      property.Property `json:"property" bson:"property"`
	Status        Status            `json:"status" bson:"status"`
	CurrentBid    string            `json:"currentBid" bson:"currentBid"`
	LeadingBidder *domain.BidderId  `json:"leadingBidder,omitempty" bson:"leadingBidder,omitempty"`
	BidCount      int32             `json:"bidCount" bson:"bidCount"`
	StartedAt     time.Time         `json:"startedAt" bson:"startedAt"`
	EndedAt       *time.Time        `json:"endedAt,omitempty" bson:"endedAt,omitempty"`
	// ScheduledEnd powers the final-seconds bidding heuristic; zero means
	// the auction runs until an explicit close.
	ScheduledEnd *time.Time `json:"scheduledEnd,omitempty" bson:"scheduledEnd,omitempty"`
}

func (a *Auction) ToId() Id {
	return Id{Id: a.Id}
}

type Id struct {
	Id domain.AuctionId `json:"id" bson:"id"`
}

type Patchable struct {
	Status        *Status          `json:"status" bson:"status,omitempty"`
	CurrentBid    *string          `json:"currentBid" bson:"currentBid,omitempty"`
	LeadingBidder *domain.BidderId `json:"leadingBidder" bson:"leadingBidder,omitempty"`
	BidCount      *int32           `json:"bidCount" bson:"bidCount,omitempty"`
	EndedAt       *time.Time       `json:"endedAt" bson:"endedAt,omitempty"`
}

type FindAllOptions struct {
	SortBy  *string          `bson:"-"`
	SortDir *domain.SortDir  `bson:"-"`
	Offset  *int32           `bson:"-"`
	Limit   *int32           `bson:"-"`
	Status  *Status          `bson:"-"`
	TitleId *domain.TitleId  `bson:"-"`
	Bidder  *domain.BidderId `bson:"-"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithSort(sortby string, sortdir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortby
		options.SortDir = &sortdir
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithTitleId(titleId domain.TitleId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.TitleId = &titleId
		return nil
	}
}

func WithLeadingBidder(bidder domain.BidderId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Bidder = &bidder
		return nil
	}
}

type Repo interface {
	FindOne(ctx.Ctx, Id) (*Auction, error)
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]*Auction, error)
	Create(ctx.Ctx, *Auction) error
	Update(ctx.Ctx, Id, Patchable) error
}

// PlaceBidResult is the outcome of one bid attempt. Rejection is a normal
// return value, not an error.
type PlaceBidResult struct {
	Accepted     bool     `json:"accepted"`
	RejectReason string   `json:"rejectReason,omitempty"`
	RiskScore    int32    `json:"riskScore"`
	Alerts       []string `json:"alerts,omitempty"`
}

type UseCase interface {
	// Start runs the compliance battery over the property and, when it
	// passes, creates the auction in active state. All-or-nothing.
	Start(ctx.Ctx, *property.Property) (*Auction, error)
	PlaceBid(c ctx.Ctx, id domain.AuctionId, bidder domain.BidderId, amount string) (*PlaceBidResult, error)
	// Close is idempotent and tolerates unknown auction ids.
	Close(c ctx.Ctx, id domain.AuctionId) error
	// Cancel aborts a pending or active auction. Whether a cancellation is
	// allowed at all is an integrator policy; the engine only enforces the
	// state machine.
	Cancel(c ctx.Ctx, id domain.AuctionId, reason string) error
	Get(ctx.Ctx, domain.AuctionId) (*Auction, error)
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]*Auction, error)
	ListBids(c ctx.Ctx, id domain.AuctionId, opts ...BidFindAllOptionsFunc) ([]*Bid, error)
}

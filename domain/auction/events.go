package auction

import (
	"time"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain"
)

type EventType string

const (
	EventTypeAuctionStarted   EventType = "auctionStarted"
	EventTypeBidAccepted      EventType = "bidAccepted"
	EventTypeAuctionClosed    EventType = "auctionClosed"
	EventTypeAuctionCancelled EventType = "auctionCancelled"
)

// Event is broadcast to observers on every lifecycle transition. Delivery is
// best-effort; engine correctness never depends on it.
type Event struct {
	Type      EventType        `json:"type"`
	AuctionId domain.AuctionId `json:"auctionId"`
	TitleId   domain.TitleId   `json:"titleId"`
	Bidder    *domain.BidderId `json:"bidder,omitempty"`
	Amount    string           `json:"amount,omitempty"`
	Winner    *domain.BidderId `json:"winner,omitempty"`
	Reason    string           `json:"reason,omitempty"`
	Time      time.Time        `json:"time"`
}

// Notifier fans events out to observers without blocking the caller.
type Notifier interface {
	Notify(ctx.Ctx, Event)
}

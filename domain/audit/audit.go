package audit

import (
	"time"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain"
)

type RecordType string

const (
	RecordTypeCompliance RecordType = "compliance"
	RecordTypeRisk       RecordType = "risk"
	RecordTypeLifecycle  RecordType = "lifecycle"
	RecordTypeSuspicious RecordType = "suspicious"
	RecordTypeReport     RecordType = "report"
)

// Record is one durable regulatory-trail entry. Append-only; the core hands
// records to the sink and never reads them back on the hot path.
type Record struct {
	Type      RecordType       `json:"type" bson:"type"`
	AuctionId domain.AuctionId `json:"auctionId,omitempty" bson:"auctionId,omitempty"`
	BidderId  *domain.BidderId `json:"bidderId,omitempty" bson:"bidderId,omitempty"`
	Action    string           `json:"action" bson:"action"`
	Detail    string           `json:"detail,omitempty" bson:"detail,omitempty"`
	Payload   interface{}      `json:"payload,omitempty" bson:"payload,omitempty"`
	Time      time.Time        `json:"time" bson:"time"`
}

// SuspiciousActivity is the proactive AML side-channel report.
type SuspiciousActivity struct {
	BidderId domain.BidderId `json:"bidderId" bson:"bidderId"`
	Amount   string          `json:"amount" bson:"amount"`
	Reason   string          `json:"reason" bson:"reason"`
	Time     time.Time       `json:"time" bson:"time"`
}

// Sink is a one-way event sink. Implementations must be safe to call from
// the bid path: bounded latency, failures logged and swallowed.
type Sink interface {
	Append(ctx.Ctx, *Record) error
	ReportSuspicious(ctx.Ctx, *SuspiciousActivity) error
}

// Trail is the regulatory read side: auditors pull per-auction histories and
// per-bidder suspicious-activity reports out of the store the sink fills.
type Trail interface {
	FindAll(c ctx.Ctx, auctionId domain.AuctionId) ([]*Record, error)
	FindSuspicious(c ctx.Ctx, bidderId domain.BidderId) ([]*SuspiciousActivity, error)
}

type Store interface {
	Append(ctx.Ctx, *Record) error
	AppendSuspicious(ctx.Ctx, *SuspiciousActivity) error
	FindAll(c ctx.Ctx, auctionId domain.AuctionId) ([]*Record, error)
	FindSuspicious(c ctx.Ctx, bidderId domain.BidderId) ([]*SuspiciousActivity, error)
}

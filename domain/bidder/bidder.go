package bidder

import (
	"time"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain"
)

const (
	ReasonAmlFailed   = "AML_FAILED"
	ReasonNotVerified = "IDENTITY_NOT_VERIFIED"
)

// Profile is the verifier-owned view of a bidder. The auction core only ever
// reads it; mutation belongs to the registration/KYC flows.
type Profile struct {
	Id               domain.BidderId   `json:"id" bson:"id"`
	Name             string            `json:"name" bson:"name"`
	IdentityVerified bool              `json:"identityVerified" bson:"identityVerified"`
	VerifyReason     string            `json:"verifyReason,omitempty" bson:"verifyReason,omitempty"`
	AmlCleared       bool              `json:"amlCleared" bson:"amlCleared"`
	Devices          []domain.DeviceId `json:"devices,omitempty" bson:"devices,omitempty"`
	FlaggedLocation  bool              `json:"flaggedLocation" bson:"flaggedLocation"`
	ContactHash      string            `json:"contactHash,omitempty" bson:"contactHash,omitempty"`
	PaymentHash      string            `json:"paymentHash,omitempty" bson:"paymentHash,omitempty"`
	AuctionsEntered  int32             `json:"auctionsEntered" bson:"auctionsEntered"`
	AuctionsWon      int32             `json:"auctionsWon" bson:"auctionsWon"`
	CreatedAt        time.Time         `json:"createdAt" bson:"createdAt"`
}

func (p *Profile) ToId() ProfileId {
	return ProfileId{Id: p.Id}
}

type ProfileId struct {
	Id domain.BidderId `json:"id" bson:"id"`
}

type Patchable struct {
	IdentityVerified *bool   `json:"identityVerified" bson:"identityVerified,omitempty"`
	AmlCleared       *bool   `json:"amlCleared" bson:"amlCleared,omitempty"`
	VerifyReason     *string `json:"verifyReason" bson:"verifyReason,omitempty"`
	AuctionsEntered  *int32  `json:"auctionsEntered" bson:"auctionsEntered,omitempty"`
	AuctionsWon      *int32  `json:"auctionsWon" bson:"auctionsWon,omitempty"`
}

// Eligibility is a point-in-time verdict for a bidder/amount pair. Not
// persisted; recomputed per bid.
type Eligibility struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason,omitempty"`
}

type Repo interface {
	FindOne(ctx.Ctx, ProfileId) (*Profile, error)
	Create(ctx.Ctx, *Profile) error
	Update(ctx.Ctx, ProfileId, Patchable) error
}

// Verifier answers whether a bidder may place a bid of the given amount.
// Amounts above the AML threshold run the AML check first and short-circuit
// on failure. Safe to call repeatedly; never mutates verifier state.
type Verifier interface {
	Evaluate(c ctx.Ctx, id domain.BidderId, amount string) (*Eligibility, error)
}

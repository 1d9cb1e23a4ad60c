package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/bidder"
)

type VerifierCfg struct {
	Repo bidder.Repo
	// AmlThreshold is a decimal amount string; bids at or below it skip the
	// AML check. Empty means the RM 1,000,000 default.
	AmlThreshold string
}

const defaultAmlThreshold = "1000000"

type impl struct {
	repo         bidder.Repo
	amlThreshold decimal.Decimal
}

func New(cfg *VerifierCfg) bidder.Verifier {
	threshold := cfg.AmlThreshold
	if threshold == "" {
		threshold = defaultAmlThreshold
	}
	d, err := domain.ParseAmount(threshold)
	if err != nil {
		// a broken threshold is a deployment error, not a runtime condition
		panic(err)
	}
	return &impl{repo: cfg.Repo, amlThreshold: d}
}

// Evaluate is read-only and safe to call repeatedly for the same bidder.
func (im *impl) Evaluate(c ctx.Ctx, id domain.BidderId, amount string) (*bidder.Eligibility, error) {
	amt, err := domain.ParseAmount(amount)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"amount": amount,
		}).Error("invalid bid amount")
		return nil, err
	}

	profile, err := im.repo.FindOne(c, bidder.ProfileId{Id: id})
	if err == domain.ErrNotFound {
		return &bidder.Eligibility{Approved: false, Reason: bidder.ReasonNotVerified}, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"bidderId": id,
		}).Error("failed to repo.FindOne")
		return nil, err
	}

	// AML first for large amounts; failure short-circuits
	if amt.GreaterThan(im.amlThreshold) && !profile.AmlCleared {
		return &bidder.Eligibility{Approved: false, Reason: bidder.ReasonAmlFailed}, nil
	}

	if !profile.IdentityVerified {
		reason := profile.VerifyReason
		if reason == "" {
			reason = bidder.ReasonNotVerified
		}
		return &bidder.Eligibility{Approved: false, Reason: reason}, nil
	}

	return &bidder.Eligibility{Approved: true}, nil
}

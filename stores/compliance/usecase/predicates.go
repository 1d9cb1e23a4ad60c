package usecase

import (
	"fmt"

	"github.com/lelongx/goapi/base/ctx"
	bValidator "github.com/lelongx/goapi/base/validator"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/compliance"
	"github.com/lelongx/goapi/domain/property"
	"github.com/lelongx/goapi/service/registry"
)

// ReservePricePredicate rejects non-positive reserve prices.
type ReservePricePredicate struct{}

func (p *ReservePricePredicate) Name() string {
	return "reservePrice"
}

func (p *ReservePricePredicate) Evaluate(c ctx.Ctx, prop *property.Property) (compliance.Result, error) {
	reserve, err := domain.ParseAmount(prop.ReservePrice)
	if err != nil {
		return compliance.Fail(fmt.Sprintf("reserve price %q is not a valid amount", prop.ReservePrice)), nil
	}
	if !reserve.IsPositive() {
		return compliance.Fail("reserve price must be greater than zero"), nil
	}
	return compliance.Pass(), nil
}

// TitleClearPredicate checks the land registry for caveats and ownership.
type TitleClearPredicate struct {
	Registry registry.Client
}

func (p *TitleClearPredicate) Name() string {
	return "titleClear"
}

func (p *TitleClearPredicate) Evaluate(c ctx.Ctx, prop *property.Property) (compliance.Result, error) {
	if prop.TitleId.IsEmpty() {
		return compliance.Fail("property has no title reference"), nil
	}
	if !bValidator.IsValidTitleId(prop.TitleId.String()) {
		return compliance.Fail(fmt.Sprintf("title reference %q is malformed", prop.TitleId)), nil
	}

	status, err := p.Registry.GetTitleStatus(c, prop.TitleId)
	if err != nil {
		return compliance.Result{}, err
	}
	if !status.Clear {
		return compliance.Fail(fmt.Sprintf("title %s carries caveats: %v", prop.TitleId, status.Caveats)), nil
	}
	if status.Owner != prop.OwnerId {
		return compliance.Fail(fmt.Sprintf("registered owner of %s does not match seller", prop.TitleId)), nil
	}
	return compliance.Pass(), nil
}

// LicensePredicate checks the auctioneer license with the licensing board.
type LicensePredicate struct {
	Registry registry.Client
}

func (p *LicensePredicate) Name() string {
	return "auctioneerLicense"
}

func (p *LicensePredicate) Evaluate(c ctx.Ctx, prop *property.Property) (compliance.Result, error) {
	if prop.AuctioneerLic == "" {
		return compliance.Fail("no auctioneer license on record"), nil
	}

	status, err := p.Registry.GetLicenseStatus(c, prop.AuctioneerLic)
	if err != nil {
		return compliance.Result{}, err
	}
	if !status.Valid {
		return compliance.Fail(fmt.Sprintf("auctioneer license %s is not valid", prop.AuctioneerLic)), nil
	}
	return compliance.Pass(), nil
}

// SpecialLandPredicate enforces special-category land restrictions. Native
// customary land is not transferable by public auction at all; Malay-reserve
// land may not be sold as commercial or industrial stock.
type SpecialLandPredicate struct{}

func (p *SpecialLandPredicate) Name() string {
	return "specialLandCategory"
}

func (p *SpecialLandPredicate) Evaluate(c ctx.Ctx, prop *property.Property) (compliance.Result, error) {
	if prop.NativeLand {
		return compliance.Fail("native customary land cannot be sold by public auction"), nil
	}
	if prop.MalayReserve && (prop.Category == property.CategoryCommercial || prop.Category == property.CategoryIndustrial) {
		return compliance.Fail(fmt.Sprintf("malay reserve land cannot be auctioned as %s", prop.Category)), nil
	}
	return compliance.Pass(), nil
}

// DefaultPredicates is the standard battery, in evaluation order.
func DefaultPredicates(reg registry.Client) []compliance.Predicate {
	return []compliance.Predicate{
		&TitleClearPredicate{Registry: reg},
		&LicensePredicate{Registry: reg},
		&ReservePricePredicate{},
		&SpecialLandPredicate{},
	}
}

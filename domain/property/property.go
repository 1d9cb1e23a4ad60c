package property

import (
	"time"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain"
)

type Category string

const (
	CategoryResidential  Category = "residential"
	CategoryCommercial   Category = "commercial"
	CategoryAgricultural Category = "agricultural"
	CategoryIndustrial   Category = "industrial"
)

// Property is the snapshot an auction sells. Fields are frozen at auction
// start; later registry changes do not retroactively affect a running sale.
type Property struct {
	Id            domain.PropertyId `json:"id" bson:"id"`
	TitleId       domain.TitleId    `json:"titleId" bson:"titleId"`
	OwnerId       domain.OwnerId    `json:"ownerId" bson:"ownerId"`
	Address       string            `json:"address" bson:"address"`
	Category      Category          `json:"category" bson:"category"`
	ReservePrice  string            `json:"reservePrice" bson:"reservePrice"`
	MalayReserve  bool              `json:"malayReserve" bson:"malayReserve"`
	NativeLand    bool              `json:"nativeLand" bson:"nativeLand"`
	AuctioneerLic string            `json:"auctioneerLic" bson:"auctioneerLic"`
	CreatedAt     time.Time         `json:"createdAt" bson:"createdAt"`
}

func (p *Property) ToId() PropertyId {
	return PropertyId{Id: p.Id}
}

type PropertyId struct {
	Id domain.PropertyId `json:"id" bson:"id"`
}

type Patchable struct {
	ReservePrice  *string `json:"reservePrice" bson:"reservePrice,omitempty"`
	AuctioneerLic *string `json:"auctioneerLic" bson:"auctioneerLic,omitempty"`
}

type FindAllOptions struct {
	SortBy   *string         `bson:"-"`
	SortDir  *domain.SortDir `bson:"-"`
	Offset   *int32          `bson:"-"`
	Limit    *int32          `bson:"-"`
	OwnerId  *domain.OwnerId `bson:"-"`
	Category *Category       `bson:"-"`
	TitleId  *domain.TitleId `bson:"-"`
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

func WithOwner(owner domain.OwnerId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.OwnerId = &owner
		return nil
	}
}

func WithCategory(category Category) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Category = &category
		return nil
	}
}

func WithTitleId(titleId domain.TitleId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.TitleId = &titleId
		return nil
	}
}

type Repo interface {
	FindOne(ctx.Ctx, PropertyId) (*Property, error)
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]*Property, error)
	Create(ctx.Ctx, *Property) error
	Update(ctx.Ctx, PropertyId, Patchable) error
}

type Usecase interface {
	Get(ctx.Ctx, PropertyId) (*Property, error)
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]*Property, error)
	Register(ctx.Ctx, *Property) error
}

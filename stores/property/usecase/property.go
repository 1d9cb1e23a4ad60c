package usecase

import (
	"time"

	"github.com/google/uuid"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/base/validator"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/property"
)

type PropertyUseCaseCfg struct {
	PropertyRepo property.Repo
}

type impl struct {
	propertyRepo property.Repo
}

func New(cfg *PropertyUseCaseCfg) property.Usecase {
	return &impl{
		propertyRepo: cfg.PropertyRepo,
	}
}

func (im *impl) Get(c bCtx.Ctx, id property.PropertyId) (*property.Property, error) {
	return im.propertyRepo.FindOne(c, id)
}

func (im *impl) FindAll(c bCtx.Ctx, opts ...property.FindAllOptionsFunc) ([]*property.Property, error) {
	return im.propertyRepo.FindAll(c, opts...)
}

// Register validates the snapshot shallowly and persists it. Deep checks
// against the land registry happen at auction start, not here, so a property
// with a caveated title can still be registered and fixed later.
func (im *impl) Register(c bCtx.Ctx, p *property.Property) error {
	if !p.TitleId.IsEmpty() && !validator.IsValidTitleId(p.TitleId.String()) {
		return domain.ErrBadParamInput
	}
	if _, err := domain.ParseAmount(p.ReservePrice); err != nil {
		return domain.ErrBadParamInput
	}

	if p.Id.IsEmpty() {
		p.Id = domain.PropertyId(uuid.NewString())
	}
	p.CreatedAt = time.Now()

	if err := im.propertyRepo.Create(c, p); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"titleId": p.TitleId,
		}).Error("failed to propertyRepo.Create")
		return err
	}
	return nil
}

package usecase

import (
	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/audit"
)

type TrailCfg struct {
	Store audit.Store
}

type trailImpl struct {
	store audit.Store
}

func NewTrail(cfg *TrailCfg) audit.Trail {
	return &trailImpl{store: cfg.Store}
}

func (im *trailImpl) FindAll(c ctx.Ctx, auctionId domain.AuctionId) ([]*audit.Record, error) {
	res, err := im.store.FindAll(c, auctionId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Error("failed to store.FindAll")
		return nil, err
	}
	return res, nil
}

func (im *trailImpl) FindSuspicious(c ctx.Ctx, bidderId domain.BidderId) ([]*audit.SuspiciousActivity, error) {
	res, err := im.store.FindSuspicious(c, bidderId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"bidderId": bidderId,
		}).Error("failed to store.FindSuspicious")
		return nil, err
	}
	return res, nil
}

package repository

import (
	"time"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/database/mongoclient"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/bidder"
	"github.com/lelongx/goapi/domain/keys"
	"github.com/lelongx/goapi/service/cache"
	"github.com/lelongx/goapi/service/cache/provider"
	"github.com/lelongx/goapi/service/cache/provider/compound"
	"github.com/lelongx/goapi/service/cache/provider/primitive"
	redisCache "github.com/lelongx/goapi/service/cache/provider/redis"
	"github.com/lelongx/goapi/service/query"
	"github.com/lelongx/goapi/service/redis"
)

type impl struct {
	q            query.Mongo
	profileCache cache.Service
}

// New creates a bidder repo. Profile reads sit on the admission hot path, so
// they go through a layered cache keyed per bidder.
func New(q query.Mongo, redis redis.Service) bidder.Repo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive(keys.PfxBidderHistory, 128),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &impl{
		q: q,
		profileCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxBidderHistory,
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *impl) FindOne(ctx ctx.Ctx, id bidder.ProfileId) (*bidder.Profile, error) {
	res := &bidder.Profile{}

	if err := im.profileCache.GetByFunc(ctx, string(id.Id), res, func() (interface{}, error) {
		return im.findOne(ctx, id)
	}); err == domain.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("profileCache.GetByFunc failed")
		return nil, err
	}

	return res, nil
}

func (im *impl) findOne(ctx ctx.Ctx, id bidder.ProfileId) (*bidder.Profile, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := bidder.Profile{}
	err = im.q.FindOne(ctx, domain.TableBidders, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *impl) Create(ctx ctx.Ctx, profile *bidder.Profile) error {
	if err := im.q.Insert(ctx, domain.TableBidders, profile); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"profile": *profile,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *impl) Update(ctx ctx.Ctx, id bidder.ProfileId, patchable bidder.Patchable) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	if err := im.q.Patch(ctx, domain.TableBidders, selector, updater); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("failed to q.Patch")
		return err
	}

	if err := im.profileCache.Del(ctx, string(id.Id)); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("profileCache.Del failed")
		return nil
	}

	return nil
}

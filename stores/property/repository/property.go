package repository

import (
	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/database/mongoclient"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/property"
	"github.com/lelongx/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) property.Repo {
	return &impl{q}
}

func (im *impl) makeQuery(opts ...property.FindAllOptionsFunc) (bson.M, error) {
	options, err := property.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.OwnerId != nil {
		query["ownerId"] = *options.OwnerId
	}

	if options.Category != nil {
		query["category"] = *options.Category
	}

	if options.TitleId != nil {
		query["titleId"] = *options.TitleId
	}

	return query, nil
}

func (im *impl) FindOne(ctx ctx.Ctx, id property.PropertyId) (*property.Property, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := property.Property{}
	err = im.q.FindOne(ctx, domain.TableProperties, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to query.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) FindAll(ctx ctx.Ctx, optFns ...property.FindAllOptionsFunc) ([]*property.Property, error) {
	opts, err := property.GetFindAllOptions(optFns...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to GetFindAllOptions")
		return nil, err
	}

	qry, err := im.makeQuery(optFns...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to makeQuery")
		return nil, err
	}

	offset := int32(0)
	limit := int32(0)
	sort := "-createdAt"

	if opts.Offset != nil {
		offset = *opts.Offset
	}

	if opts.Limit != nil {
		limit = *opts.Limit
	}

	if opts.SortBy != nil && opts.SortDir != nil {
		sort = *opts.SortBy
		if *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	res := []*property.Property{}
	if err := im.q.Search(ctx, domain.TableProperties, int(offset), int(limit), sort, qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to query.Search")
		return nil, err
	}
	return res, nil
}

func (im *impl) Create(ctx ctx.Ctx, p *property.Property) error {
	if err := im.q.Insert(ctx, domain.TableProperties, p); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  p.Id,
		}).Error("failed to query.Insert")
		return err
	}
	return nil
}

func (im *impl) Update(ctx ctx.Ctx, id property.PropertyId, patchable property.Patchable) error {
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

	err = im.q.Patch(ctx, domain.TableProperties, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to query.Patch")
		return err
	}
	return nil
}

package repository

import (
	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/database/mongoclient"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/auction"
	"github.com/lelongx/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type auctionRepoImpl struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

func (im *auctionRepoImpl) makeQuery(opts ...auction.FindAllOptionsFunc) (bson.M, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.Status != nil {
		query["status"] = *options.Status
	}

	if options.TitleId != nil {
		query["property.titleId"] = *options.TitleId
	}

	if options.Bidder != nil {
		query["leadingBidder"] = *options.Bidder
	}

	return query, nil
}

func (im *auctionRepoImpl) FindOne(ctx ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := auction.Auction{}
	err = im.q.FindOne(ctx, domain.TableAuctions, qry, &res)
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

func (im *auctionRepoImpl) FindAll(ctx ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := auction.GetFindAllOptions(opts...)
	offset, limit := int32(0), int32(0)
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}
	sort := "-startedAt"
	if options.SortBy != nil && options.SortDir != nil {
		sort = *options.SortBy
		if *options.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	res := []*auction.Auction{}
	err = im.q.Search(ctx, domain.TableAuctions, int(offset), int(limit), sort, query, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *auctionRepoImpl) Create(ctx ctx.Ctx, a *auction.Auction) error {
	if err := im.q.Insert(ctx, domain.TableAuctions, a); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"auction": *a,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Update(ctx ctx.Ctx, id auction.Id, patchable auction.Patchable) error {
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

	if err := im.q.Patch(ctx, domain.TableAuctions, selector, updater); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

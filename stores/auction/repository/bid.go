package repository

import (
	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/auction"
	"github.com/lelongx/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type bidRepoImpl struct {
	q query.Mongo
}

func NewBidRepo(q query.Mongo) auction.BidRepo {
	return &bidRepoImpl{q}
}

func (im *bidRepoImpl) makeQuery(opts ...auction.BidFindAllOptionsFunc) (bson.M, error) {
	options, err := auction.GetBidFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.AuctionId != nil {
		query["auctionId"] = *options.AuctionId
	}

	if options.BidderId != nil {
		query["bidderId"] = *options.BidderId
	}

	if options.Accepted != nil {
		query["accepted"] = *options.Accepted
	}

	timeQuery := bson.M{}
	if options.TimeGT != nil {
		timeQuery["$gt"] = *options.TimeGT
	}
	if options.TimeLT != nil {
		timeQuery["$lt"] = *options.TimeLT
	}
	if len(timeQuery) > 0 {
		query["time"] = timeQuery
	}

	return query, nil
}

func (im *bidRepoImpl) FindAll(ctx ctx.Ctx, opts ...auction.BidFindAllOptionsFunc) ([]*auction.Bid, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := auction.GetBidFindAllOptions(opts...)
	offset, limit := int32(0), int32(0)
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}
	sort := "time"
	if options.SortBy != nil && options.SortDir != nil {
		sort = *options.SortBy
		if *options.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	res := []*auction.Bid{}
	err = im.q.Search(ctx, domain.TableBids, int(offset), int(limit), sort, query, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *bidRepoImpl) Count(ctx ctx.Ctx, opts ...auction.BidFindAllOptionsFunc) (int, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableBids, query)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *bidRepoImpl) Create(ctx ctx.Ctx, bid *auction.Bid) error {
	if err := im.q.Insert(ctx, domain.TableBids, bid); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"bid": *bid,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

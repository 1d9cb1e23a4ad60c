package repository

import (
	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/audit"
	"github.com/lelongx/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) audit.Store {
	return &impl{q}
}

func (im *impl) Append(ctx ctx.Ctx, record *audit.Record) error {
	if err := im.q.Insert(ctx, domain.TableAuditRecords, record); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"record": *record,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *impl) AppendSuspicious(ctx ctx.Ctx, report *audit.SuspiciousActivity) error {
	if err := im.q.Insert(ctx, domain.TableSuspiciousActivities, report); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"report": *report,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *impl) FindAll(ctx ctx.Ctx, auctionId domain.AuctionId) ([]*audit.Record, error) {
	res := []*audit.Record{}
	qry := bson.M{"auctionId": auctionId}
	if err := im.q.Search(ctx, domain.TableAuditRecords, 0, 0, "time", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindSuspicious(ctx ctx.Ctx, bidderId domain.BidderId) ([]*audit.SuspiciousActivity, error) {
	res := []*audit.SuspiciousActivity{}
	qry := bson.M{"bidderId": bidderId}
	if err := im.q.Search(ctx, domain.TableSuspiciousActivities, 0, 0, "time", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

package repository

import (
	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/risk"
	"github.com/lelongx/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type reportRepoImpl struct {
	q query.Mongo
}

func NewReportRepo(q query.Mongo) risk.ReportRepo {
	return &reportRepoImpl{q}
}

func (im *reportRepoImpl) FindOne(ctx ctx.Ctx, auctionId domain.AuctionId) (*risk.FraudReport, error) {
	qry := bson.M{"auctionId": auctionId}
	res := risk.FraudReport{}
	err := im.q.FindOne(ctx, domain.TableFraudReports, qry, &res)
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

func (im *reportRepoImpl) Upsert(ctx ctx.Ctx, report *risk.FraudReport) error {
	selector := bson.M{"auctionId": report.AuctionId}
	if err := im.q.Upsert(ctx, domain.TableFraudReports, selector, report); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"report":   *report,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

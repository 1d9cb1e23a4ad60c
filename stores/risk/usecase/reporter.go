package usecase

import (
	"fmt"
	"time"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/base/metrics"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/auction"
	"github.com/lelongx/goapi/domain/audit"
	"github.com/lelongx/goapi/domain/risk"
)

type ReporterCfg struct {
	BidRepo    auction.BidRepo
	ReportRepo risk.ReportRepo
	Collusion  risk.CollusionDetector
	Sink       audit.Sink
	Thresholds risk.Thresholds
	Metrics    metrics.Service
}

type reporterImpl struct {
	bidRepo    auction.BidRepo
	reportRepo risk.ReportRepo
	collusion  risk.CollusionDetector
	sink       audit.Sink
	thresholds risk.Thresholds
	met        metrics.Service
}

func NewReporter(cfg *ReporterCfg) risk.Reporter {
	thresholds := cfg.Thresholds
	if thresholds == (risk.Thresholds{}) {
		thresholds = risk.DefaultThresholds()
	}
	return &reporterImpl{
		bidRepo:    cfg.BidRepo,
		reportRepo: cfg.ReportRepo,
		collusion:  cfg.Collusion,
		sink:       cfg.Sink,
		thresholds: thresholds,
		met:        cfg.Metrics,
	}
}

// Generate aggregates the auction's risk picture and persists it. Crossing
// the high-risk bar notifies the authority channel; it never gates any bid.
func (im *reporterImpl) Generate(c ctx.Ctx, auctionId domain.AuctionId) (*risk.FraudReport, error) {
	bids, err := im.bidRepo.FindAll(c, auction.BidWithAuctionId(auctionId))
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Error("failed to bidRepo.FindAll")
		return nil, err
	}

	report := &risk.FraudReport{
		AuctionId:   auctionId,
		TotalBids:   int32(len(bids)),
		GeneratedAt: time.Now(),
	}

	distinctAlerts := map[string]bool{}
	sum := int64(0)
	for _, b := range bids {
		if b.RiskScore > report.MaxRisk {
			report.MaxRisk = b.RiskScore
		}
		sum += int64(b.RiskScore)
		for _, a := range b.Alerts {
			if !distinctAlerts[a] {
				distinctAlerts[a] = true
				report.Alerts = append(report.Alerts, a)
			}
		}
	}
	if len(bids) > 0 {
		report.AvgRisk = float64(sum) / float64(len(bids))
	}

	finding, err := im.collusion.Detect(c, auctionId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Warn("collusion detection unavailable for report")
	} else if len(finding.Evidence) > 0 {
		report.Collusion = finding
	}

	report.HighRisk = float64(report.MaxRisk) > im.thresholds.HighRiskAggregate

	if err := im.reportRepo.Upsert(c, report); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Error("failed to reportRepo.Upsert")
		return nil, err
	}

	im.sink.Append(c, &audit.Record{
		Type:      audit.RecordTypeReport,
		AuctionId: auctionId,
		Action:    "fraudReportGenerated",
		Detail:    fmt.Sprintf("maxRisk=%d avgRisk=%.1f alerts=%d", report.MaxRisk, report.AvgRisk, len(report.Alerts)),
		Payload:   report,
	})

	if report.HighRisk {
		if im.met != nil {
			im.met.BumpSum("fraud_report.high_risk", 1)
		}
		im.sink.Append(c, &audit.Record{
			Type:      audit.RecordTypeReport,
			AuctionId: auctionId,
			Action:    "authorityNotified",
			Detail:    fmt.Sprintf("aggregate risk %d exceeded %.0f", report.MaxRisk, im.thresholds.HighRiskAggregate),
		})
	}

	return report, nil
}

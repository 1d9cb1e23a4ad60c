package usecase

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/lelongx/goapi/base/counter"
	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain/audit"
)

const appendTimeout = 3 * time.Second

type SinkCfg struct {
	Store audit.Store
	// PoolSize bounds concurrent background appends; zero means 32.
	PoolSize int
}

type impl struct {
	store   audit.Store
	pool    *goroutines.Pool
	dropped *counter.Counter
}

// New returns a sink that persists records off the caller's goroutine. A
// slow or failing store never stalls the bid path; failures are logged and
// dropped, matching the one-way contract.
func New(cfg *SinkCfg) audit.Sink {
	size := cfg.PoolSize
	if size == 0 {
		size = 32
	}
	return &impl{
		store:   cfg.Store,
		pool:    goroutines.NewPool(size),
		dropped: counter.NewCounter(),
	}
}

func (im *impl) Append(c ctx.Ctx, record *audit.Record) error {
	if record.Time.IsZero() {
		record.Time = time.Now()
	}

	rec := *record
	im.pool.Schedule(func() {
		cctx, cancel := ctx.WithTimeout(ctx.Background(), appendTimeout)
		defer cancel()
		if err := im.store.Append(cctx, &rec); err != nil {
			im.dropped.Add(1)
			cctx.WithFields(log.Fields{
				"err":     err,
				"record":  rec,
				"dropped": im.dropped.Count(),
			}).Error("audit append dropped")
		}
	})
	return nil
}

func (im *impl) ReportSuspicious(c ctx.Ctx, report *audit.SuspiciousActivity) error {
	if report.Time.IsZero() {
		report.Time = time.Now()
	}

	rep := *report
	im.pool.Schedule(func() {
		cctx, cancel := ctx.WithTimeout(ctx.Background(), appendTimeout)
		defer cancel()
		if err := im.store.AppendSuspicious(cctx, &rep); err != nil {
			im.dropped.Add(1)
			cctx.WithFields(log.Fields{
				"err":     err,
				"report":  rep,
				"dropped": im.dropped.Count(),
			}).Error("suspicious activity report dropped")
		}
	})
	return nil
}

package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain/audit"
	mAudit "github.com/lelongx/goapi/domain/audit/mocks"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestAppendPersistsInBackground(t *testing.T) {
	req := require.New(t)

	var mu sync.Mutex
	var persisted []*audit.Record
	store := &mAudit.Store{}
	store.On("Append", mock.Anything, mock.Anything).Return(func(_ bCtx.Ctx, r *audit.Record) error {
		mu.Lock()
		defer mu.Unlock()
		persisted = append(persisted, r)
		return nil
	})

	sink := New(&SinkCfg{Store: store, PoolSize: 4})
	req.NoError(sink.Append(bCtx.Background(), &audit.Record{
		Type:   audit.RecordTypeLifecycle,
		Action: "auctionStarted",
	}))

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(persisted) == 1
	})

	mu.Lock()
	defer mu.Unlock()
	req.Equal("auctionStarted", persisted[0].Action)
	req.False(persisted[0].Time.IsZero())
}

func TestAppendFailureIsSwallowed(t *testing.T) {
	req := require.New(t)

	done := make(chan struct{}, 1)
	store := &mAudit.Store{}
	store.On("Append", mock.Anything, mock.Anything).Return(func(bCtx.Ctx, *audit.Record) error {
		done <- struct{}{}
		return xerrors.New("disk full")
	})

	sink := New(&SinkCfg{Store: store, PoolSize: 4})
	req.NoError(sink.Append(bCtx.Background(), &audit.Record{Action: "bidScored"}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("store never called")
	}

	im := sink.(*impl)
	waitFor(t, func() bool { return im.dropped.Count() == 1 })
}

func TestReportSuspiciousPersistsInBackground(t *testing.T) {
	req := require.New(t)

	done := make(chan *audit.SuspiciousActivity, 1)
	store := &mAudit.Store{}
	store.On("AppendSuspicious", mock.Anything, mock.Anything).Return(func(_ bCtx.Ctx, r *audit.SuspiciousActivity) error {
		done <- r
		return nil
	})

	sink := New(&SinkCfg{Store: store, PoolSize: 4})
	req.NoError(sink.ReportSuspicious(bCtx.Background(), &audit.SuspiciousActivity{
		BidderId: "bidder-1",
		Amount:   "2000000",
		Reason:   "AML_FAILED",
	}))

	select {
	case r := <-done:
		req.Equal("AML_FAILED", r.Reason)
		req.False(r.Time.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("store never called")
	}
}

// a record mutated by the caller after Append must not leak into the store
func TestAppendCopiesRecord(t *testing.T) {
	req := require.New(t)

	block := make(chan struct{})
	done := make(chan *audit.Record, 1)
	store := &mAudit.Store{}
	store.On("Append", mock.Anything, mock.Anything).Return(func(_ bCtx.Ctx, r *audit.Record) error {
		<-block
		done <- r
		return nil
	})

	sink := New(&SinkCfg{Store: store, PoolSize: 4})
	record := &audit.Record{Action: "auctionStarted"}
	req.NoError(sink.Append(bCtx.Background(), record))
	record.Action = "mutated"
	close(block)

	select {
	case r := <-done:
		req.Equal("auctionStarted", r.Action)
	case <-time.After(2 * time.Second):
		t.Fatal("store never called")
	}
}

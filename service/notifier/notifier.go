package notifier

import (
	"sync"
	"time"

	"github.com/viney-shih/goroutines"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain/auction"
)

// Observer receives lifecycle events. Callbacks run on the hub's pool and
// must not block for long; a misbehaving observer only delays other
// observers, never the engine.
type Observer interface {
	OnAuctionEvent(bCtx.Ctx, auction.Event)
}

type Service interface {
	auction.Notifier
	Subscribe(Observer)
}

type impl struct {
	mu        sync.RWMutex
	observers []Observer
	pool      *goroutines.Pool
}

func New(poolSize int) Service {
	if poolSize == 0 {
		poolSize = 16
	}
	return &impl{pool: goroutines.NewPool(poolSize)}
}

func (im *impl) Subscribe(o Observer) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.observers = append(im.observers, o)
}

// Notify is best-effort fan-out; delivery order across observers is not
// guaranteed.
func (im *impl) Notify(c bCtx.Ctx, event auction.Event) {
	if event.Time.IsZero() {
		event.Time = time.Now()
	}

	im.mu.RLock()
	observers := make([]Observer, len(im.observers))
	copy(observers, im.observers)
	im.mu.RUnlock()

	for _, o := range observers {
		o := o
		im.pool.Schedule(func() {
			o.OnAuctionEvent(bCtx.Background(), event)
		})
	}
}

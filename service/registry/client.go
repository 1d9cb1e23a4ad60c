package registry

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

type TitleStatus struct {
	TitleId domain.TitleId `json:"titleId"`
	Clear   bool           `json:"clear"`
	Caveats []string       `json:"caveats"`
	Owner   domain.OwnerId `json:"owner"`
}

type LicenseStatus struct {
	License string    `json:"license"`
	Valid   bool      `json:"valid"`
	Expiry  time.Time `json:"expiry"`
}

type TransferRequest struct {
	TitleId   domain.TitleId   `json:"titleId"`
	FromOwner domain.OwnerId   `json:"fromOwner"`
	ToOwner   domain.BidderId  `json:"toOwner"`
	Price     string           `json:"price"`
	AuctionId domain.AuctionId `json:"auctionId"`
}

// Client talks to the government land/license registry. Reads are cached;
// FileTransfer is fire-and-forget from the engine's perspective.
type Client interface {
	GetTitleStatus(bCtx.Ctx, domain.TitleId) (*TitleStatus, error)
	GetLicenseStatus(c bCtx.Ctx, license string) (*LicenseStatus, error)
	FileTransfer(bCtx.Ctx, *TransferRequest) error
}

type ClientCfg struct {
	BaseUrl    string
	HttpClient http.Client
	Timeout    time.Duration
}

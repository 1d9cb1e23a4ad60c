package registry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/lelongx/goapi/base/ctx"
)

func newTestClient(baseUrl string) Client {
	return NewClient(&ClientCfg{
		BaseUrl:    baseUrl,
		HttpClient: http.Client{},
		Timeout:    2 * time.Second,
	})
}

func TestGetTitleStatus(t *testing.T) {
	req := require.New(t)

	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		req.Equal("/titles/GRN%201234%2F2020", r.URL.EscapedPath())
		json.NewEncoder(w).Encode(TitleStatus{
			TitleId: "GRN 1234/2020",
			Clear:   true,
			Owner:   "owner-1",
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	ctx := bCtx.Background()

	status, err := c.GetTitleStatus(ctx, "GRN 1234/2020")
	req.NoError(err)
	req.True(status.Clear)
	req.Equal("owner-1", status.Owner.String())

	// second read comes from cache
	_, err = c.GetTitleStatus(ctx, "GRN 1234/2020")
	req.NoError(err)
	req.Equal(int64(1), atomic.LoadInt64(&hits))
}

func TestGetLicenseStatus(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/licenses/LIC-7788", r.URL.Path)
		json.NewEncoder(w).Encode(LicenseStatus{
			License: "LIC-7788",
			Valid:   true,
			Expiry:  time.Now().Add(24 * time.Hour),
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	status, err := c.GetLicenseStatus(bCtx.Background(), "LIC-7788")
	req.NoError(err)
	req.True(status.Valid)
}

func TestGetTitleStatusUpstreamError(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.GetTitleStatus(bCtx.Background(), "GRN 1234/2020")
	req.Error(err)
}

func TestFileTransfer(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		req.Equal("/transfers", r.URL.Path)
		body := &TransferRequest{}
		req.NoError(json.NewDecoder(r.Body).Decode(body))
		req.Equal("750000", body.Price)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.FileTransfer(bCtx.Background(), &TransferRequest{
		TitleId:   "GRN 1234/2020",
		FromOwner: "owner-1",
		ToOwner:   "bidder-9",
		Price:     "750000",
		AuctionId: "auction-1",
	})
	req.NoError(err)
}

func TestFileTransferRetriesTransientFailure(t *testing.T) {
	req := require.New(t)

	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&hits, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.FileTransfer(bCtx.Background(), &TransferRequest{TitleId: "GRN 1234/2020"})
	req.NoError(err)
	req.Equal(int64(2), atomic.LoadInt64(&hits))
}

func TestFileTransferRejected(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.FileTransfer(bCtx.Background(), &TransferRequest{TitleId: "GRN 1234/2020"})
	req.ErrorIs(err, ErrStatusCodeNotOk)
}

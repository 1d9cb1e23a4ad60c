package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/lelongx/goapi/base/backoff"
	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/keys"
	"github.com/lelongx/goapi/service/cache"
	"github.com/lelongx/goapi/service/cache/provider/primitive"
)

const (
	defaultTimeout       = 5 * time.Second
	fileTransferAttempts = 3
)

func NewClient(cfg *ClientCfg) Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &client{
		baseUrl: cfg.BaseUrl,
		client:  cfg.HttpClient,
		timeout: timeout,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxRegistry,
			Cache: primitive.NewPrimitive(keys.PfxRegistry, 64),
		}),
	}
}

type client struct {
	baseUrl string
	client  http.Client
	timeout time.Duration
	cache   cache.Service
}

func (c *client) GetTitleStatus(ctx bCtx.Ctx, titleId domain.TitleId) (*TitleStatus, error) {
	key := keys.RedisKey("title", titleId.String())
	status := &TitleStatus{}
	if err := c.cache.GetByFunc(ctx, key, status, func() (interface{}, error) {
		return c.getTitleStatus(ctx, titleId)
	}); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *client) getTitleStatus(ctx bCtx.Ctx, titleId domain.TitleId) (*TitleStatus, error) {
	u := fmt.Sprintf("%s/titles/%s", c.baseUrl, url.PathEscape(titleId.String()))
	data, err := c.get(ctx, u)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &TitleStatus{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) GetLicenseStatus(ctx bCtx.Ctx, license string) (*LicenseStatus, error) {
	key := keys.RedisKey("license", license)
	status := &LicenseStatus{}
	if err := c.cache.GetByFunc(ctx, key, status, func() (interface{}, error) {
		return c.getLicenseStatus(ctx, license)
	}); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *client) getLicenseStatus(ctx bCtx.Ctx, license string) (*LicenseStatus, error) {
	u := fmt.Sprintf("%s/licenses/%s", c.baseUrl, url.PathEscape(license))
	data, err := c.get(ctx, u)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &LicenseStatus{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

// FileTransfer retries transient failures; a 4xx means the registry rejected
// the filing outright and retrying cannot help.
func (c *client) FileTransfer(ctx bCtx.Ctx, req *TransferRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return err
	}

	bo := backoff.NewExponential(200*time.Millisecond, 2*time.Second)
	var lastErr error
	for attempt := 0; attempt < fileTransferAttempts; attempt++ {
		if attempt > 0 {
			if err := bo.Backoff(ctx); err != nil {
				return err
			}
		}

		retryable, err := c.postTransfer(ctx, body)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
		ctx.WithFields(log.Fields{
			"err":     err,
			"attempt": attempt + 1,
		}).Warn("transfer filing attempt failed")
	}
	return lastErr
}

func (c *client) postTransfer(ctx bCtx.Ctx, body []byte) (retryable bool, err error) {
	u := fmt.Sprintf("%s/transfers", c.baseUrl)

	cctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(cctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		ctx.WithField("err", err).Error("http.NewRequestWithContext failed")
		return false, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("client.Do failed")
		return true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusAccepted {
		return false, nil
	}

	ctx.WithFields(log.Fields{
		"url":    u,
		"status": resp.StatusCode,
	}).Error("transfer filing rejected")
	return resp.StatusCode >= http.StatusInternalServerError, ErrStatusCodeNotOk
}

func (c *client) get(ctx bCtx.Ctx, u string) ([]byte, error) {
	cctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrStatusCodeNotOk
	}
	return ioutil.ReadAll(resp.Body)
}

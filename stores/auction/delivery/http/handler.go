package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/delivery"
	"github.com/lelongx/goapi/domain"
	dAuction "github.com/lelongx/goapi/domain/auction"
	"github.com/lelongx/goapi/domain/compliance"
	dProperty "github.com/lelongx/goapi/domain/property"
	"github.com/lelongx/goapi/middleware"
)

type handler struct {
	auction  dAuction.UseCase
	property dProperty.Usecase
}

func New(e *echo.Echo, _auction dAuction.UseCase, _property dProperty.Usecase) {
	h := &handler{_auction, _property}
	e.GET("/auctions", h.getAuctions, middleware.CacheHttp(30*time.Second))
	e.POST("/auctions", h.startAuction)
	e.GET("/auctions/:id", h.getAuction, middleware.CacheHttp(10*time.Second))
	e.POST("/auctions/:id/bids", h.placeBid)
	e.GET("/auctions/:id/bids", h.getBids)
	e.POST("/auctions/:id/close", h.closeAuction)
	e.POST("/auctions/:id/cancel", h.cancelAuction)
}

func (h *handler) getAuctions(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		SortBy  *string          `query:"sortBy"`
		SortDir *domain.SortDir  `query:"sortDir"`
		Offset  int32            `query:"offset"`
		Limit   int32            `query:"limit"`
		Status  *dAuction.Status `query:"status"`
		TitleId *domain.TitleId  `query:"titleId"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []dAuction.FindAllOptionsFunc{
		dAuction.WithPagination(p.Offset, p.Limit),
	}
	if p.SortBy != nil && p.SortDir != nil {
		opts = append(opts, dAuction.WithSort(*p.SortBy, *p.SortDir))
	}
	if p.Status != nil {
		opts = append(opts, dAuction.WithStatus(*p.Status))
	}
	if p.TitleId != nil {
		opts = append(opts, dAuction.WithTitleId(*p.TitleId))
	}

	res, err := h.auction.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
	}
}

func (h *handler) startAuction(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		PropertyId domain.PropertyId `json:"propertyId"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if p.PropertyId.IsEmpty() {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "missing propertyId")
	}

	prop, err := h.property.Get(ctx, dProperty.PropertyId{Id: p.PropertyId})
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(_ctx, http.StatusNotFound, "property not found")
	} else if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}

	res, err := h.auction.Start(ctx, prop)
	if err != nil {
		var rejected *compliance.Rejected
		if xerrors.As(err, &rejected) {
			return delivery.MakeJsonResp(_ctx, http.StatusUnprocessableEntity, rejected.Issues)
		}
		if xerrors.Is(err, domain.ErrCollaboratorDown) {
			return delivery.MakeJsonResp(_ctx, http.StatusServiceUnavailable, err)
		}
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusCreated, res)
}

func (h *handler) getAuction(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	id := domain.AuctionId(_ctx.Param("id"))
	res, err := h.auction.Get(ctx, id)
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(_ctx, http.StatusNotFound, "auction not found")
	} else if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) placeBid(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		BidderId domain.BidderId `json:"bidderId"`
		Amount   string          `json:"amount"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if p.BidderId.IsEmpty() || len(p.Amount) == 0 {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "missing bidderId or amount")
	}

	id := domain.AuctionId(_ctx.Param("id"))
	res, err := h.auction.PlaceBid(ctx, id, p.BidderId, p.Amount)
	if err != nil {
		if xerrors.Is(err, domain.ErrCollaboratorDown) {
			return delivery.MakeJsonResp(_ctx, http.StatusServiceUnavailable, err)
		}
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getBids(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Offset   int32            `query:"offset"`
		Limit    int32            `query:"limit"`
		Accepted *bool            `query:"accepted"`
		BidderId *domain.BidderId `query:"bidderId"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []dAuction.BidFindAllOptionsFunc{
		dAuction.BidWithPagination(p.Offset, p.Limit),
	}
	if p.Accepted != nil {
		opts = append(opts, dAuction.BidWithAccepted(*p.Accepted))
	}
	if p.BidderId != nil {
		opts = append(opts, dAuction.BidWithBidderId(*p.BidderId))
	}

	id := domain.AuctionId(_ctx.Param("id"))
	res, err := h.auction.ListBids(ctx, id, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) closeAuction(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	id := domain.AuctionId(_ctx.Param("id"))
	if err := h.auction.Close(ctx, id); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) cancelAuction(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Reason string `json:"reason"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	id := domain.AuctionId(_ctx.Param("id"))
	err := h.auction.Cancel(ctx, id, p.Reason)
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(_ctx, http.StatusNotFound, "auction not found")
	} else if xerrors.Is(err, domain.ErrAuctionClosed) {
		return delivery.MakeJsonResp(_ctx, http.StatusConflict, "auction already ended")
	} else if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

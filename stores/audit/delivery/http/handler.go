package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/delivery"
	"github.com/lelongx/goapi/domain"
	dAudit "github.com/lelongx/goapi/domain/audit"
)

type handler struct {
	trail dAudit.Trail
}

func New(e *echo.Echo, _trail dAudit.Trail) {
	h := &handler{_trail}
	e.GET("/auctions/:id/audit", h.getAuditTrail)
	e.GET("/bidders/:id/suspicious", h.getSuspiciousActivities)
}

func (h *handler) getAuditTrail(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	id := domain.AuctionId(_ctx.Param("id"))
	res, err := h.trail.FindAll(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getSuspiciousActivities(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	id := domain.BidderId(_ctx.Param("id"))
	res, err := h.trail.FindSuspicious(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

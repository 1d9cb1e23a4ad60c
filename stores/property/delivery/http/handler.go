package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	bCtx "github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/delivery"
	"github.com/lelongx/goapi/domain"
	dProperty "github.com/lelongx/goapi/domain/property"
	"github.com/lelongx/goapi/middleware"
)

type handler struct {
	property dProperty.Usecase
}

func New(e *echo.Echo, _property dProperty.Usecase) {
	h := &handler{_property}
	e.GET("/properties", h.getProperties, middleware.CacheHttp(30*time.Second))
	e.POST("/properties", h.registerProperty)
	e.GET("/properties/:id", h.getProperty, middleware.CacheHttp(1*time.Minute))
}

func (h *handler) getProperties(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		SortBy   *string             `query:"sortBy"`
		SortDir  *domain.SortDir     `query:"sortDir"`
		Offset   int32               `query:"offset"`
		Limit    int32               `query:"limit"`
		OwnerId  *domain.OwnerId     `query:"ownerId"`
		Category *dProperty.Category `query:"category"`
		TitleId  *domain.TitleId     `query:"titleId"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []dProperty.FindAllOptionsFunc{
		dProperty.WithPagination(p.Offset, p.Limit),
	}
	if p.SortBy != nil && p.SortDir != nil {
		opts = append(opts, dProperty.WithSort(*p.SortBy, *p.SortDir))
	}
	if p.OwnerId != nil {
		opts = append(opts, dProperty.WithOwner(*p.OwnerId))
	}
	if p.Category != nil {
		opts = append(opts, dProperty.WithCategory(*p.Category))
	}
	if p.TitleId != nil {
		opts = append(opts, dProperty.WithTitleId(*p.TitleId))
	}

	res, err := h.property.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
	}
}

func (h *handler) registerProperty(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	p := &dProperty.Property{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	err := h.property.Register(ctx, p)
	if err == domain.ErrBadParamInput {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid property")
	} else if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusCreated, p)
}

func (h *handler) getProperty(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	id := dProperty.PropertyId{Id: domain.PropertyId(_ctx.Param("id"))}
	res, err := h.property.Get(ctx, id)
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(_ctx, http.StatusNotFound, "property not found")
	} else if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

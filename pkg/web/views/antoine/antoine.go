package antoine

import (
	"github.com/gin-gonic/gin"
	"github.com/scienceol/psat/pkg/common"
	"github.com/scienceol/psat/pkg/common/code"
	"github.com/scienceol/psat/pkg/core/antoine"
	"github.com/scienceol/psat/pkg/middleware/logger"
)

type Handle struct {
	aService antoine.Service
}

func NewAntoineHandle(aService antoine.Service) *Handle {
	return &Handle{aService: aService}
}

func (h *Handle) ListCoef(ctx *gin.Context) {
	req := &antoine.ListCoefReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse ListCoef param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr.WithErr(err))
		return
	}
	resp, err := h.aService.ListCoef(ctx, req)
	common.Reply(ctx, err, resp)
}

func (h *Handle) CreateCoef(ctx *gin.Context) {
	req := &antoine.CreateCoefReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse CreateCoef param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr.WithErr(err))
		return
	}
	resp, err := h.aService.CreateCoef(ctx, req)
	if err != nil {
		logger.Errorf(ctx, "CreateCoef err: %+v", err)
	}
	common.Reply(ctx, err, resp)
}

func (h *Handle) Compound(ctx *gin.Context) {
	req := &antoine.CompoundReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse Compound param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr.WithErr(err))
		return
	}
	resp, err := h.aService.Compound(ctx, req)
	common.Reply(ctx, err, resp)
}

package saturation

import (
	"github.com/gin-gonic/gin"
	"github.com/scienceol/psat/pkg/common"
	"github.com/scienceol/psat/pkg/common/code"
	"github.com/scienceol/psat/pkg/core/saturation"
	"github.com/scienceol/psat/pkg/middleware/logger"
)

type Handle struct {
	sService saturation.Service
}

func NewSaturationHandle(sService saturation.Service) *Handle {
	return &Handle{sService: sService}
}

func (h *Handle) Pressure(ctx *gin.Context) {
	req := &saturation.PressureReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse Pressure param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr.WithErr(err))
		return
	}
	resp, err := h.sService.Calculate(ctx, req)
	if err != nil {
		logger.Warnf(ctx, "Calculate name: %s err: %+v", req.Name, err)
	}
	common.Reply(ctx, err, resp)
}

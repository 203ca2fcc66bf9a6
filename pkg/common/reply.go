package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scienceol/psat/pkg/common/code"
)

type Error struct {
	Msg  string   `json:"msg"`
	Info []string `json:"info,omitempty"`
}

type Resp struct {
	Code  code.ErrCode `json:"code"`
	Data  any          `json:"data,omitempty"`
	Error *Error       `json:"error,omitempty"`
}

func ReplyOk(ctx *gin.Context, data ...any) {
	resp := &Resp{Code: code.Success}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	ctx.JSON(http.StatusOK, resp)
}

// ReplyErr writes err with the HTTP status its code maps to. Extra strings are
// appended to the error info.
func ReplyErr(ctx *gin.Context, err error, info ...string) {
	c := code.Of(err)
	ctx.JSON(httpStatus(c), &Resp{
		Code: c,
		Error: &Error{
			Msg:  err.Error(),
			Info: info,
		},
	})
}

func Reply(ctx *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	ReplyOk(ctx, data...)
}

func httpStatus(c code.ErrCode) int {
	switch c {
	case code.ParamErr, code.InvalidCoefRange:
		return http.StatusBadRequest
	case code.SubstanceNotFound, code.RecordNotFound:
		return http.StatusNotFound
	case code.TemperatureOutOfRange, code.AntoineDomainErr:
		return http.StatusUnprocessableEntity
	case code.RPCHttpErr, code.RPCHttpCodeErr:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

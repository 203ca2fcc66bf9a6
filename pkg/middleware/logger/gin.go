package logger

import (
	"time"

	"github.com/gin-gonic/gin"
)

// LogWithWriter logs one line per request once the handler chain returns.
func LogWithWriter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path
		if raw := ctx.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		ctx.Next()

		status := ctx.Writer.Status()
		latency := time.Since(start)
		if len(ctx.Errors) > 0 || status >= 500 {
			Errorf(ctx, "%s %s %d %s %s", ctx.Request.Method, path, status, latency, ctx.Errors.String())
			return
		}
		Infof(ctx, "%s %s %d %s", ctx.Request.Method, path, status, latency)
	}
}

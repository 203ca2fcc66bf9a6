package web

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/scienceol/psat/internal/config"
	"github.com/scienceol/psat/pkg/core/antoine"
	"github.com/scienceol/psat/pkg/core/saturation"
	"github.com/scienceol/psat/pkg/middleware/logger"
	antoineView "github.com/scienceol/psat/pkg/web/views/antoine"
	"github.com/scienceol/psat/pkg/web/views/health"
	saturationView "github.com/scienceol/psat/pkg/web/views/saturation"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Services struct {
	Saturation saturation.Service
	Antoine    antoine.Service
}

func NewRouter(_ context.Context, g *gin.Engine, svc *Services) {
	installMiddleware(g)
	installURL(g, svc)
}

func installMiddleware(g *gin.Engine) {
	g.ContextWithFallback = true
	server := config.Global().Server
	g.Use(cors.Default())
	g.Use(otelgin.Middleware(fmt.Sprintf("%s-%s", server.Platform, server.Service)))
	g.Use(logger.LogWithWriter())
}

func installURL(g *gin.Engine, svc *Services) {
	api := g.Group("/api")
	api.GET("/health", health.Health)
	api.GET("/health/live", health.Live)
	api.GET("/health/ready", health.Ready)

	v1 := api.Group("/v1")
	{
		sHandle := saturationView.NewSaturationHandle(svc.Saturation)
		v1.GET("/saturation/pressure", sHandle.Pressure)
	}
	{
		aHandle := antoineView.NewAntoineHandle(svc.Antoine)
		antoineRouter := v1.Group("/antoine")
		antoineRouter.GET("", aHandle.ListCoef)
		antoineRouter.POST("", aHandle.CreateCoef)
		antoineRouter.GET("/compound", aHandle.Compound)
	}
}

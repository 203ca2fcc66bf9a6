package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scienceol/psat/internal/config"
	antoineImpl "github.com/scienceol/psat/pkg/core/antoine/antoine"
	saturationImpl "github.com/scienceol/psat/pkg/core/saturation/saturation"
	psatgrpc "github.com/scienceol/psat/pkg/grpc"
	"github.com/scienceol/psat/pkg/middleware/db"
	"github.com/scienceol/psat/pkg/middleware/logger"
	"github.com/scienceol/psat/pkg/middleware/redis"
	"github.com/scienceol/psat/pkg/middleware/trace"
	"github.com/scienceol/psat/pkg/repo/antoine"
	"github.com/scienceol/psat/pkg/repo/pubchem"
	"github.com/scienceol/psat/pkg/utils"
	"github.com/scienceol/psat/pkg/web"
	"github.com/spf13/cobra"
)

func NewWeb() *cobra.Command {
	return &cobra.Command{
		Use:          "apiserver",
		Long:         "Start the API server (HTTP + gRPC)",
		SilenceUsage: true,
		PreRunE:      initWeb,
		RunE:         newRouter,
		PostRunE:     cleanWebResource,
	}
}

func initWeb(cmd *cobra.Command, _ []string) error {
	conf := config.Global()
	trace.InitTrace(cmd.Context(), &trace.InitConfig{
		ServiceName:     fmt.Sprintf("%s-%s", conf.Server.Service, conf.Server.Platform),
		Version:         conf.Trace.Version,
		TraceEndpoint:   conf.Trace.TraceEndpoint,
		MetricEndpoint:  conf.Trace.MetricEndpoint,
		TraceProject:    conf.Trace.TraceProject,
		TraceInstanceID: conf.Trace.TraceInstanceID,
		TraceAK:         conf.Trace.TraceAK,
		TraceSK:         conf.Trace.TraceSK,
		Stdout:          conf.Trace.Stdout,
	})
	initPostgres(cmd.Context())
	initRedis(cmd.Context())
	return nil
}

func newServices() *web.Services {
	conf := config.Global()
	store := antoine.NewAntoineImpl()
	cache := antoine.NewCache(store, redis.GetClient(), conf.Cache.TTL())
	return &web.Services{
		Saturation: saturationImpl.NewSaturation(cache),
		Antoine:    antoineImpl.NewAntoine(store, pubchem.NewPubChemRepo(conf.RPC.PubChem.Addr), cache),
	}
}

func newRouter(cmd *cobra.Command, _ []string) error {
	conf := config.Global()
	if conf.Server.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	web.NewRouter(cmd.Root().Context(), router, newServices())

	port := conf.Server.Port
	httpServer := http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 30 * time.Second,
		IdleTimeout:       30 * time.Second,
		TLSNextProto:      make(map[string]func(*http.Server, *tls.Conn, http.Handler)),
	}

	logger.Infof(cmd.Context(), "API server starting on http://0.0.0.0:%d", port)
	utils.SafelyGo(func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf(cmd.Context(), "start server err: %v", err)
		}
	}, func(err error) {
		logger.Errorf(cmd.Context(), "run http server err: %+v", err)
		os.Exit(1)
	})

	grpcServer, err := psatgrpc.NewServer(cmd.Root().Context(), conf.Server.GrpcPort)
	if err != nil {
		logger.Errorf(cmd.Context(), "start gRPC server err: %+v", err)
	} else {
		grpcServer.SetServing()
	}

	<-cmd.Context().Done()

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf(ctx, "shut down server err: %+v", err)
	}
	return nil
}

func cleanWebResource(cmd *cobra.Command, _ []string) error {
	redis.CloseRedis(cmd.Context())
	db.ClosePostgres(cmd.Context())
	trace.CloseTrace()
	return nil
}

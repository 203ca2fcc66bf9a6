package health

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scienceol/psat/internal/config"
	"github.com/scienceol/psat/pkg/middleware/db"
	"github.com/scienceol/psat/pkg/middleware/redis"
)

// Health is a simple health check.
func Health(g *gin.Context) {
	g.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Live reports that the process is up.
func Live(g *gin.Context) {
	g.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type pinger func(ctx context.Context) (initialised bool, err error)

func pingPostgres(ctx context.Context) (bool, error) {
	ds := db.DB()
	if ds == nil {
		return false, nil
	}
	sqlDB, err := ds.DBIns().DB()
	if err != nil {
		return true, err
	}
	return true, sqlDB.PingContext(ctx)
}

func pingRedis(ctx context.Context) (bool, error) {
	rc := redis.GetClient()
	if rc == nil {
		return false, nil
	}
	return true, rc.Ping(ctx).Err()
}

// Ready checks the coefficient store and, when enabled, its cache.
func Ready(g *gin.Context) {
	checks := gin.H{}
	healthy := true

	pingers := map[string]pinger{"postgres": pingPostgres}
	if config.Global().Cache.Enable {
		pingers["redis"] = pingRedis
	} else {
		checks["redis"] = "disabled"
	}

	for name, ping := range pingers {
		initialised, err := ping(g.Request.Context())
		switch {
		case !initialised:
			checks[name] = "not_initialized"
			healthy = false
		case err != nil:
			checks[name] = "unhealthy"
			healthy = false
		default:
			checks[name] = "ok"
		}
	}

	status := http.StatusOK
	msg := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		msg = "not_ready"
	}
	g.JSON(status, gin.H{"status": msg, "checks": checks})
}

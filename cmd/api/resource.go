package api

import (
	"context"

	"github.com/scienceol/psat/internal/config"
	"github.com/scienceol/psat/pkg/middleware/db"
	"github.com/scienceol/psat/pkg/middleware/redis"
)

func initPostgres(ctx context.Context) {
	conf := config.Global()
	db.InitPostgres(ctx, &db.Config{
		Host: conf.Database.Host, Port: conf.Database.Port,
		User: conf.Database.User, PW: conf.Database.Password,
		DBName: conf.Database.Name, LogConf: db.LogConf{Level: conf.Log.LogLevel},
	})
}

func initRedis(ctx context.Context) {
	conf := config.Global()
	if !conf.Cache.Enable {
		return
	}
	redis.InitRedis(ctx, &redis.Redis{
		Host: conf.Redis.Host, Port: conf.Redis.Port,
		Password: conf.Redis.Password, DB: conf.Redis.DB,
	})
}

package app

import (
	"time"

	"go.uber.org/fx"

	"votemap.tw/backend/internal/app/appconfig"
	"votemap.tw/backend/internal/app/appcontext"
	"votemap.tw/backend/internal/controller"
	"votemap.tw/backend/internal/infra"
	"votemap.tw/backend/internal/model/cache"
	"votemap.tw/backend/internal/pkg/logger"
	"votemap.tw/backend/internal/repo"
	"votemap.tw/backend/internal/server"
	"votemap.tw/backend/internal/service"
	"votemap.tw/backend/internal/util/ingestverifs"
	"votemap.tw/backend/internal/workers/calcwkr"
	"votemap.tw/backend/internal/workers/ingestwkr"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Verifiers
		ingestverifs.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Global singleton inits. Keep those before controllers: controllers are
		// also fx#Invoke functions and are called in registration order.
		fx.Invoke(infra.SentryInit),
		fx.Invoke(cache.Initialize),

		// Controllers
		controller.Module(),

		// Workers
		fx.Invoke(calcwkr.Start),
		fx.Invoke(ingestwkr.Start),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// fiber's Shutdown() already bounds the shutdown duration; StopTimeout only
		// acts as a countermeasure in case the fiber app is not shutting down at all.
		fx.StopTimeout(5 * time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}

package server

import (
	"go.uber.org/fx"

	"votemap.tw/backend/internal/server/httpserver"
	"votemap.tw/backend/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}

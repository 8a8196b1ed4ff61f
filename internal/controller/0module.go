package controller

import (
	"go.uber.org/fx"

	controllermeta "votemap.tw/backend/internal/controller/meta"
	controllerv1 "votemap.tw/backend/internal/controller/v1"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (v1)
		controllerv1.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}

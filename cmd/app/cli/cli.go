package cli

import (
	"context"

	"go.uber.org/fx"

	"votemap.tw/backend/internal/app"
	"votemap.tw/backend/internal/app/appcontext"
)

func Start(module fx.Option) {
	app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}

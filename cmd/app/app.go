package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"votemap.tw/backend/cmd/app/cli/runscript"
	"votemap.tw/backend/cmd/app/server"
	"votemap.tw/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "votemap-backend",
		Description: "Backend for the Taiwan village-level election map. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS as ingest MQ and Redis for derived-result caching.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			runscript.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}

package script_import_votes

import (
	"github.com/nats-io/nats.go"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"votemap.tw/backend/internal/repo"
)

type CommandDeps struct {
	fx.In

	NatsJS         nats.JetStreamContext
	VoteRecordRepo *repo.VoteRecord
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:        "import_votes",
		Description: "import one dataset of raw village-level vote rows from a CSV file or URL, publishing batches to the ingest queue",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "path to the CSV file to import",
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "URL of the CSV file to import; used when --file is absent",
			},
			&cli.StringFlag{
				Name:     "category",
				Usage:    "election category of the dataset",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "year",
				Usage:    "election year of the dataset",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "replace",
				Usage: "delete existing rows of the dataset before importing",
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, depsFn())
		},
	}
}

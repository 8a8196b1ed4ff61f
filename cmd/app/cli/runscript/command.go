package runscript

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "votemap.tw/backend/cmd/app/cli"
	script_import_votes "votemap.tw/backend/cmd/app/cli/runscript/scripts/import_votes"
)

func depsFn[T any]() func() T {
	return func() T {
		var deps T
		cliapp.Start(fx.Populate(&deps))
		return deps
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "run-script",
		Description: "run maintenance go scripts",
		Subcommands: []*cli.Command{
			script_import_votes.Command(depsFn[script_import_votes.CommandDeps]()),
		},
	}
}

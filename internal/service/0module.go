package service

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		NewFlip,
		NewTrend,
		NewHealth,
		NewExport,
		NewResult,
		NewCompare,
		NewHistory,
		NewElection,
		NewGeometry,
		NewAnnotation,
		NewPopulation,
	))
}

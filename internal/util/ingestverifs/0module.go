package ingestverifs

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("ingestverifs", fx.Provide(
		NewBoundsVerifier,
		NewIngestVerifier,
		NewRejectRuleVerifier,
	))
}

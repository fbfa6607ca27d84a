//go:build wireinject
// +build wireinject

package di

import (
	"DeceptionIndex/pkg/config"
	"DeceptionIndex/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Provider access
		ProvideHTTPClient,
		ProvidePlayerLookup,
		ProvidePitchSource,
		ProvideCache,
		ProvideBreaker,
		ProvidePacer,

		// Outputs
		ProvideReporter,
		ProvideScoreSink,

		// Use cases
		ProvideFetcher,
		ProvideScoreboard,
		ProvidePipeline,

		// HTTP
		ProvideScoresHandler,
		ProvideHTTPServer,

		ProvideApp,
	)
	return nil, nil, nil
}

//go:build wireinject
// +build wireinject

package di

import (
	"SarosAnalytics/pkg/config"
	"SarosAnalytics/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		ProvidePortfolioSource,
		ProvideHTTPHandler,

		ProvideHTTPServer,
		ProvideApp,
	)
	return &server.App{}, nil
}

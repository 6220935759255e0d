//go:build wireinject
// +build wireinject

package di

import (
	"RegimeSim/pkg/app"
	"RegimeSim/pkg/config"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*app.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideRegistry,
		ProvideMetrics,

		// Domain
		ProvideSimulationConfig,
		ProvideTrialRunner,
		ProvideSummarizer,

		// Output
		ProvideChartRenderer,
		ProvideArtifactWriter,

		// Use cases
		ProvideScenarioComparison,

		// Application
		ProvideApp,
	)
	return &app.App{}, nil
}

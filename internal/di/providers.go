package di

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"RegimeSim/internal/domain/models"
	"RegimeSim/internal/domain/repository"
	domsvc "RegimeSim/internal/domain/service"
	internalrepo "RegimeSim/internal/repository"
	"RegimeSim/internal/services/montecarlo"
	"RegimeSim/internal/services/stats"
	"RegimeSim/internal/usecase"
	"RegimeSim/pkg/app"
	"RegimeSim/pkg/chart"
	"RegimeSim/pkg/config"
	"RegimeSim/pkg/logger"
	"RegimeSim/pkg/metrics"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideRegistry creates a private Prometheus registry for the run.
func ProvideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry) repository.Metrics {
	return metrics.New(reg)
}

// ProvideSimulationConfig validates and freezes the simulation parameters.
func ProvideSimulationConfig(cfg *config.Config) (models.SimulationConfig, error) {
	s := cfg.Simulation
	edges, err := models.NewBucketEdges(s.BucketWidth, s.BucketDomain)
	if err != nil {
		return models.SimulationConfig{}, fmt.Errorf("buckets: %w", err)
	}
	sim, err := models.NewSimulationConfig(models.SimulationSpec{
		Sims:                 s.Sims,
		Steps:                s.Steps,
		Signal:               models.Normal{Mean: s.SignalMean, StdDev: s.SignalStdDev},
		SignalThreshold:      s.SignalThreshold,
		NormalVolatility:     models.Normal{Mean: s.NormalVolMean, StdDev: s.NormalVolStdDev},
		HighVolatility:       models.Normal{Mean: s.HighVolMean, StdDev: s.HighVolStdDev},
		Buckets:              edges,
		PlayOnHighVolatility: true,
	})
	if err != nil {
		return models.SimulationConfig{}, fmt.Errorf("simulation config: %w", err)
	}
	return sim, nil
}

// ProvideTrialRunner creates the parallel trial coordinator.
func ProvideTrialRunner(cfg *config.Config, l *logger.Logger) domsvc.TrialRunner {
	return montecarlo.NewCoordinator(
		montecarlo.WithWorkers(cfg.Simulation.Workers),
		montecarlo.WithLogger(l),
	)
}

// ProvideSummarizer creates the outcome summarizer.
func ProvideSummarizer() domsvc.Summarizer {
	return stats.NewOutcomeSummarizer()
}

// ProvideChartRenderer creates the line chart renderer.
func ProvideChartRenderer(cfg *config.Config) repository.ChartRenderer {
	return chart.NewLineChart(
		chart.WithTitle(cfg.Output.Title, "terminal value (bucket midpoint)", "trials"),
		chart.WithSize(cfg.Output.Width, cfg.Output.Height),
		chart.WithFormat(cfg.Output.Format),
	)
}

// ProvideArtifactWriter creates the file artifact writer.
func ProvideArtifactWriter(cfg *config.Config) repository.ArtifactWriter {
	return internalrepo.NewFileArtifact(cfg.Output.Path)
}

// ProvideScenarioComparison creates the comparison use case.
func ProvideScenarioComparison(
	cfg *config.Config,
	runner domsvc.TrialRunner,
	summarizer domsvc.Summarizer,
	renderer repository.ChartRenderer,
	artifact repository.ArtifactWriter,
	m repository.Metrics,
	l *logger.Logger,
) *usecase.ScenarioComparison {
	return usecase.NewScenarioComparison(
		runner,
		summarizer,
		renderer,
		artifact,
		m,
		l,
		cfg.Simulation.RiskLabel,
		cfg.Simulation.SafeLabel,
	)
}

// ProvideApp creates the application.
func ProvideApp(
	cfg *config.Config,
	sim models.SimulationConfig,
	comparison *usecase.ScenarioComparison,
	reg *prometheus.Registry,
	l *logger.Logger,
) *app.App {
	return app.New(cfg, sim, comparison, reg, l)
}

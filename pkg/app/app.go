package app

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"RegimeSim/internal/domain/models"
	"RegimeSim/internal/usecase"
	"RegimeSim/pkg/config"
	applogger "RegimeSim/pkg/logger"
)

// App encapsulates one comparison run from parameters to artifact.
type App struct {
	cfg        *config.Config
	sim        models.SimulationConfig
	comparison *usecase.ScenarioComparison
	gatherer   prometheus.Gatherer
	log        *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	sim models.SimulationConfig,
	comparison *usecase.ScenarioComparison,
	gatherer prometheus.Gatherer,
	log *applogger.Logger,
) *App {
	return &App{
		cfg:        cfg,
		sim:        sim,
		comparison: comparison,
		gatherer:   gatherer,
		log:        log,
	}
}

// Run simulates both scenarios, writes the chart and returns. Any error
// means no artifact was written.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	a.log.Info("simulation starting",
		applogger.String("env", a.cfg.Environment),
		applogger.Int("sims", a.sim.Sims()),
		applogger.Int("steps", a.sim.Steps()),
		applogger.Float64("signal_threshold", a.sim.SignalThreshold()),
		applogger.Int("buckets", a.sim.Buckets().Len()),
		applogger.Float64("bucket_domain", a.sim.Buckets().Domain()),
	)

	path, results, err := a.comparison.Execute(ctx, a.sim)
	if err != nil {
		return fmt.Errorf("comparison: %w", err)
	}

	for _, r := range results {
		a.log.Info("histogram",
			applogger.String("scenario", r.Label),
			applogger.Uint64("counted", r.Histogram.Total()),
			applogger.Int("dropped", r.Summary.Dropped),
		)
	}
	a.logTotals()

	a.log.Info("done", applogger.String("artifact", path), applogger.Duration("elapsed", time.Since(start)))
	return nil
}

// logTotals reports the counters gathered during the run.
func (a *App) logTotals() {
	if a.gatherer == nil {
		return
	}
	mfs, err := a.gatherer.Gather()
	if err != nil {
		a.log.Warn("gather metrics", applogger.Error(err))
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			fields := []applogger.Field{
				applogger.String("metric", mf.GetName()),
				applogger.Float64("value", m.GetCounter().GetValue()),
			}
			for _, lp := range m.GetLabel() {
				fields = append(fields, applogger.String(lp.GetName(), lp.GetValue()))
			}
			a.log.Info("metric", fields...)
		}
	}
}

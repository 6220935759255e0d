package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"RegimeSim/internal/domain/models"
	domrepo "RegimeSim/internal/domain/repository"
	domsvc "RegimeSim/internal/domain/service"
	"RegimeSim/internal/services/montecarlo"
	"RegimeSim/pkg/logger"
)

// ErrNoResults is returned when there is nothing to render.
var ErrNoResults = errors.New("no scenario results")

// Scenario is one labeled policy variant of a base configuration.
type Scenario struct {
	Label  string
	Config models.SimulationConfig
}

// ScenarioComparison runs the trade-through and abstain variants of the
// same configuration and hands both histograms to the renderer.
type ScenarioComparison struct {
	runner     domsvc.TrialRunner
	summarizer domsvc.Summarizer
	renderer   domrepo.ChartRenderer
	artifact   domrepo.ArtifactWriter
	metrics    domrepo.Metrics
	log        *logger.Logger
	riskLabel  string
	safeLabel  string
}

// NewScenarioComparison creates a new ScenarioComparison instance.
func NewScenarioComparison(
	runner domsvc.TrialRunner,
	summarizer domsvc.Summarizer,
	renderer domrepo.ChartRenderer,
	artifact domrepo.ArtifactWriter,
	metrics domrepo.Metrics,
	log *logger.Logger,
	riskLabel, safeLabel string,
) *ScenarioComparison {
	if log == nil {
		log = logger.Nop()
	}
	return &ScenarioComparison{
		runner:     runner,
		summarizer: summarizer,
		renderer:   renderer,
		artifact:   artifact,
		metrics:    metrics,
		log:        log,
		riskLabel:  riskLabel,
		safeLabel:  safeLabel,
	}
}

// Scenarios derives the two policy variants of base, risk-taking first.
func (uc *ScenarioComparison) Scenarios(base models.SimulationConfig) []Scenario {
	return []Scenario{
		{Label: uc.riskLabel, Config: base.WithPolicy(true)},
		{Label: uc.safeLabel, Config: base.WithPolicy(false)},
	}
}

// RunScenario simulates every trial of sc, then aggregates once all of them
// have finished.
func (uc *ScenarioComparison) RunScenario(ctx context.Context, sc Scenario) (models.ScenarioResult, error) {
	start := time.Now()

	outcomes, err := uc.runner.Run(ctx, sc.Config)
	if err != nil {
		return models.ScenarioResult{}, fmt.Errorf("scenario %s: %w", sc.Label, err)
	}
	uc.metrics.RecordLatency("simulate", time.Since(start).Seconds())
	uc.metrics.RecordTrials(sc.Label, len(outcomes))

	aggStart := time.Now()
	agg := montecarlo.Aggregate(outcomes, sc.Config.Buckets())
	uc.metrics.RecordLatency("aggregate", time.Since(aggStart).Seconds())
	uc.metrics.RecordDropped(sc.Label, agg.Dropped)

	counts := agg.Histogram.Counts()
	uc.metrics.RecordHistogram(sc.Label, sc.Config.Buckets().Labels(), counts)

	summary := uc.summarizer.Summarize(outcomes, agg.Dropped)

	uc.log.Debug("distribution",
		logger.String("scenario", sc.Label),
		logger.Any("counts", counts),
	)
	uc.log.Info("scenario complete",
		logger.String("scenario", sc.Label),
		logger.Bool("play_on_high_volatility", sc.Config.PlayOnHighVolatility()),
		logger.Int("trials", summary.Trials),
		logger.Int("dropped", summary.Dropped),
		logger.Float64("mean", summary.Mean),
		logger.Float64("median", summary.Median),
		logger.Float64("p05", summary.P05),
		logger.Float64("p95", summary.P95),
		logger.Float64("share_above_base", summary.ShareAbove),
		logger.Duration("elapsed", time.Since(start)),
	)
	if agg.Dropped > 0 {
		uc.log.Warn("outcomes outside histogram domain were not counted",
			logger.String("scenario", sc.Label),
			logger.Int("dropped", agg.Dropped),
			logger.Float64("domain", sc.Config.Buckets().Domain()),
		)
	}

	return models.ScenarioResult{
		Label:     sc.Label,
		Histogram: agg.Histogram,
		Summary:   summary,
	}, nil
}

// Run executes both policy variants of base, one after the other.
func (uc *ScenarioComparison) Run(ctx context.Context, base models.SimulationConfig) ([]models.ScenarioResult, error) {
	scenarios := uc.Scenarios(base)
	results := make([]models.ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		res, err := uc.RunScenario(ctx, sc)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Render draws results over their shared buckets and writes the artifact.
func (uc *ScenarioComparison) Render(ctx context.Context, results []models.ScenarioResult) (string, error) {
	if len(results) == 0 {
		return "", ErrNoResults
	}
	edges := results[0].Histogram.Edges()
	series := make([]models.Series, 0, len(results))
	for _, r := range results {
		if r.Histogram.Edges() != edges {
			return "", fmt.Errorf("scenario %s: histogram buckets differ from %s", r.Label, results[0].Label)
		}
		series = append(series, models.Series{Label: r.Label, Values: r.Histogram.Values()})
	}

	start := time.Now()
	img, err := uc.renderer.Render(ctx, series, edges.Labels())
	if err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	uc.metrics.RecordLatency("render", time.Since(start).Seconds())

	path, err := uc.artifact.Write(ctx, img)
	if err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	uc.log.Info("artifact written", logger.String("path", path), logger.Int("bytes", len(img)))
	return path, nil
}

// Execute runs the full comparison and writes the chart.
func (uc *ScenarioComparison) Execute(ctx context.Context, base models.SimulationConfig) (string, []models.ScenarioResult, error) {
	results, err := uc.Run(ctx, base)
	if err != nil {
		return "", nil, err
	}
	path, err := uc.Render(ctx, results)
	if err != nil {
		return "", results, err
	}
	return path, results, nil
}

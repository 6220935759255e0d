package montecarlo

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"RegimeSim/internal/domain/models"
	"RegimeSim/pkg/logger"
)

// SourceFactory returns a fresh random source for one worker. It is called
// once per worker from the coordinating goroutine, never concurrently.
type SourceFactory func(worker int) models.Source

// NewPCGSource is the default SourceFactory. Each call seeds a PCG generator
// from the runtime-seeded global generator, so repeated runs are
// statistically similar but never bit-identical.
func NewPCGSource(int) models.Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Option configures Coordinator.
type Option func(*Config)

// Config holds coordinator configuration.
type Config struct {
	Workers int
	Sources SourceFactory
	Logger  *logger.Logger
}

// WithWorkers sets the number of worker goroutines. Values <= 0 keep the default.
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Workers = n
		}
	}
}

// WithSourceFactory replaces the per-worker random source constructor.
func WithSourceFactory(f SourceFactory) Option {
	return func(c *Config) {
		if f != nil {
			c.Sources = f
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// Coordinator fans independent trials out over a fixed worker pool and joins
// them before returning.
type Coordinator struct {
	cfg *Config
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(opts ...Option) *Coordinator {
	cfg := &Config{
		Workers: runtime.GOMAXPROCS(0),
		Sources: NewPCGSource,
		Logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Coordinator{cfg: cfg}
}

// Workers returns the configured pool size.
func (c *Coordinator) Workers() int { return c.cfg.Workers }

// Run computes exactly sim.Sims() outcomes. Trial indices are split into
// contiguous chunks, one per worker; each worker owns its random source and
// writes only to its own range of the result slice. Run returns after every
// worker has finished. ctx is checked once before fan-out; started trials
// always run to completion.
func (c *Coordinator) Run(ctx context.Context, sim models.SimulationConfig) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run trials: %w", err)
	}

	n := sim.Sims()
	outcomes := make([]float64, n)

	workers := c.cfg.Workers
	if workers > n {
		workers = n
	}
	if workers < 1 {
		return outcomes, nil
	}

	start := time.Now()
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		src := c.cfg.Sources(w)
		wg.Add(1)
		go func(part []float64, src models.Source) {
			defer wg.Done()
			for i := range part {
				part[i] = SimulateTrial(sim, src)
			}
		}(outcomes[lo:hi], src)
	}
	wg.Wait()

	c.cfg.Logger.Debug("trials complete",
		logger.Int("trials", n),
		logger.Int("workers", workers),
		logger.Duration("elapsed", time.Since(start)),
	)
	return outcomes, nil
}

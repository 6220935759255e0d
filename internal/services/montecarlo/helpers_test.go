package montecarlo

import (
	"math/rand/v2"
	"sync/atomic"
	"testing"

	"RegimeSim/internal/domain/models"
)

// constSource always returns the same standard normal draw.
type constSource struct {
	z     float64
	draws int
}

func (s *constSource) NormFloat64() float64 {
	s.draws++
	return s.z
}

// scriptSource replays a fixed sequence of draws.
type scriptSource struct {
	draws []float64
	next  int
}

func (s *scriptSource) NormFloat64() float64 {
	z := s.draws[s.next]
	s.next++
	return z
}

// exclusiveSource panics when two goroutines draw from it at once.
type exclusiveSource struct {
	inner models.Source
	busy  atomic.Bool
}

func (s *exclusiveSource) NormFloat64() float64 {
	if !s.busy.CompareAndSwap(false, true) {
		panic("source shared between goroutines")
	}
	defer s.busy.Store(false)
	return s.inner.NormFloat64()
}

func seeded(seed uint64) SourceFactory {
	return func(worker int) models.Source {
		return rand.New(rand.NewPCG(seed, uint64(worker)))
	}
}

type spec struct {
	sims, steps              int
	signal, normVol, highVol models.Normal
	threshold                float64
	play                     bool
}

func defaultSpec() spec {
	return spec{
		sims:      100,
		steps:     300,
		signal:    models.Normal{Mean: 0, StdDev: 0.01},
		normVol:   models.Normal{Mean: 0, StdDev: 0.01},
		highVol:   models.Normal{Mean: 0, StdDev: 0.05},
		threshold: 0.005,
		play:      true,
	}
}

func newConfig(t *testing.T, s spec) models.SimulationConfig {
	t.Helper()
	edges, err := models.NewBucketEdges(0.1, 5.0)
	if err != nil {
		t.Fatalf("NewBucketEdges: %v", err)
	}
	cfg, err := models.NewSimulationConfig(models.SimulationSpec{
		Sims:                 s.sims,
		Steps:                s.steps,
		Signal:               s.signal,
		SignalThreshold:      s.threshold,
		NormalVolatility:     s.normVol,
		HighVolatility:       s.highVol,
		Buckets:              edges,
		PlayOnHighVolatility: s.play,
	})
	if err != nil {
		t.Fatalf("NewSimulationConfig: %v", err)
	}
	return cfg
}

package service

import (
	"context"

	"RegimeSim/internal/domain/models"
)

// TrialRunner computes exactly cfg.Sims() independent trial outcomes.
type TrialRunner interface {
	Run(ctx context.Context, cfg models.SimulationConfig) ([]float64, error)
}

// Summarizer describes a completed set of outcomes.
type Summarizer interface {
	Summarize(outcomes []float64, dropped int) models.Summary
}

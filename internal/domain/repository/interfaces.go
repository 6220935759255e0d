package repository

import (
	"context"

	"RegimeSim/internal/domain/models"
)

// ChartRenderer turns labeled series over shared categories into an image.
type ChartRenderer interface {
	Render(ctx context.Context, series []models.Series, categories []string) ([]byte, error)
}

// ArtifactWriter persists the rendered chart.
type ArtifactWriter interface {
	Write(ctx context.Context, data []byte) (string, error)
}

type Metrics interface {
	RecordTrials(scenario string, n int)
	RecordDropped(scenario string, n int)
	RecordHistogram(scenario string, labels []string, counts []uint64)
	RecordLatency(op string, seconds float64)
}

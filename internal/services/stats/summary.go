package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"RegimeSim/internal/domain/models"
)

// OutcomeSummarizer computes descriptive statistics of terminal values.
type OutcomeSummarizer struct{}

func NewOutcomeSummarizer() *OutcomeSummarizer { return &OutcomeSummarizer{} }

// Summarize describes outcomes. Non-finite values count as trials but are
// excluded from the moments and quantiles.
func (OutcomeSummarizer) Summarize(outcomes []float64, dropped int) models.Summary {
	s := models.Summary{Trials: len(outcomes), Dropped: dropped}

	finite := make([]float64, 0, len(outcomes))
	above := 0
	for _, x := range outcomes {
		if x > 1 {
			above++
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		finite = append(finite, x)
	}
	if len(outcomes) > 0 {
		s.ShareAbove = float64(above) / float64(len(outcomes))
	}
	if len(finite) == 0 {
		return s
	}

	slices.Sort(finite)
	s.Mean, s.StdDev = stat.MeanStdDev(finite, nil)
	if len(finite) == 1 {
		s.StdDev = 0
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, finite, nil)
	s.P05 = stat.Quantile(0.05, stat.Empirical, finite, nil)
	s.P95 = stat.Quantile(0.95, stat.Empirical, finite, nil)
	return s
}

package montecarlo

import "RegimeSim/internal/domain/models"

// AggregateResult is the histogram of a run plus the number of outcomes no
// bucket accepted.
type AggregateResult struct {
	Histogram models.Histogram
	Dropped   int
}

// Aggregate buckets outcomes in one sequential pass. It must only be called
// once every trial has finished.
//
// Outcomes below 0, at or above the bucket domain, or NaN are dropped, not
// clamped into the edge buckets.
func Aggregate(outcomes []float64, edges models.BucketEdges) AggregateResult {
	h := models.NewHistogram(edges)
	dropped := 0
	for _, x := range outcomes {
		if !h.Add(x) {
			dropped++
		}
	}
	return AggregateResult{Histogram: h, Dropped: dropped}
}

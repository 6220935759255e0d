package models

// Histogram holds per-bucket counts aligned positionally with BucketEdges.
// It is filled by a single sequential pass and read-only afterwards.
type Histogram struct {
	edges  BucketEdges
	counts []uint64
}

// NewHistogram returns an all-zero histogram over edges.
func NewHistogram(edges BucketEdges) Histogram {
	return Histogram{edges: edges, counts: make([]uint64, edges.Len())}
}

// Add counts x in its bucket and reports whether any bucket accepted it.
func (h *Histogram) Add(x float64) bool {
	i, ok := h.edges.Index(x)
	if !ok {
		return false
	}
	h.counts[i]++
	return true
}

func (h Histogram) Edges() BucketEdges { return h.edges }

// Count returns the count of bucket i.
func (h Histogram) Count(i int) uint64 { return h.counts[i] }

// Counts returns a copy of all counts.
func (h Histogram) Counts() []uint64 {
	out := make([]uint64, len(h.counts))
	copy(out, h.counts)
	return out
}

// Values returns the counts as float64 for plotting.
func (h Histogram) Values() []float64 {
	out := make([]float64, len(h.counts))
	for i, c := range h.counts {
		out[i] = float64(c)
	}
	return out
}

// Total returns the number of counted outcomes.
func (h Histogram) Total() uint64 {
	var sum uint64
	for _, c := range h.counts {
		sum += c
	}
	return sum
}

// Summary describes the raw outcomes of one scenario, including those the
// histogram dropped.
type Summary struct {
	Trials     int
	Dropped    int
	Mean       float64
	StdDev     float64
	Median     float64
	P05        float64
	P95        float64
	ShareAbove float64 // fraction of trials ending above the 1.0 base
}

// ScenarioResult is one labeled histogram ready for rendering.
type ScenarioResult struct {
	Label     string
	Histogram Histogram
	Summary   Summary
}

// Series is a named sequence of values for a chart.
type Series struct {
	Label  string
	Values []float64
}

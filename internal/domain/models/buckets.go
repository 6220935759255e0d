package models

import (
	"fmt"
	"math"
)

// BucketEdges partitions [0, D) into contiguous half-open buckets of equal width.
// Bucket i covers [i*w, i*w+w).
type BucketEdges struct {
	width float64
	n     int
}

// NewBucketEdges builds floor(domain/width) buckets of the given width.
func NewBucketEdges(width, domain float64) (BucketEdges, error) {
	if !(width > 0) || math.IsInf(width, 0) {
		return BucketEdges{}, fmt.Errorf("%w: bucket width must be positive, got %v", ErrInvalidConfig, width)
	}
	if !(domain >= width) || math.IsInf(domain, 0) {
		return BucketEdges{}, fmt.Errorf("%w: bucket domain %v must cover at least one bucket of width %v", ErrInvalidConfig, domain, width)
	}
	// tolerate 5.0/0.1 landing a hair under 50
	n := int(math.Floor(domain/width + 1e-9))
	return BucketEdges{width: width, n: n}, nil
}

// Len returns the number of buckets.
func (b BucketEdges) Len() int { return b.n }

// Width returns the bucket width.
func (b BucketEdges) Width() float64 { return b.width }

// Bucket returns the bounds [lo, hi) of bucket i.
func (b BucketEdges) Bucket(i int) (lo, hi float64) {
	lo = b.width * float64(i)
	return lo, lo + b.width
}

// Domain returns the exclusive upper bound of the last bucket.
func (b BucketEdges) Domain() float64 {
	if b.n == 0 {
		return 0
	}
	_, hi := b.Bucket(b.n - 1)
	return hi
}

// Index returns the bucket holding x. Values below 0, at or above the
// domain, and NaN belong to no bucket.
//
// The result always equals the first bucket i, in ascending order, with
// lo <= x < hi; floor(x/w) only picks the neighbourhood to check.
func (b BucketEdges) Index(x float64) (int, bool) {
	if b.n == 0 || math.IsNaN(x) || x < 0 || x >= b.Domain() {
		return 0, false
	}
	guess := int(x / b.width)
	for i := guess - 1; i <= guess+1; i++ {
		if i < 0 || i >= b.n {
			continue
		}
		if lo, hi := b.Bucket(i); lo <= x && x < hi {
			return i, true
		}
	}
	return 0, false
}

// Midpoints returns the centre of every bucket.
func (b BucketEdges) Midpoints() []float64 {
	out := make([]float64, b.n)
	for i := range out {
		lo, _ := b.Bucket(i)
		out[i] = lo + b.width/2
	}
	return out
}

// Labels returns the bucket midpoints formatted with two decimals ("0.05", "0.15", ...).
func (b BucketEdges) Labels() []string {
	mids := b.Midpoints()
	out := make([]string, len(mids))
	for i, m := range mids {
		out[i] = fmt.Sprintf("%.2f", m)
	}
	return out
}

package models

import (
	"errors"
	"math"
	"testing"
)

func TestBucketEdgesPartition(t *testing.T) {
	edges, err := NewBucketEdges(0.1, 5.0)
	if err != nil {
		t.Fatalf("NewBucketEdges: %v", err)
	}
	if edges.Len() != 50 {
		t.Fatalf("expected 50 buckets, got %d", edges.Len())
	}
	w := edges.Width()
	for i := 0; i < edges.Len(); i++ {
		lo, hi := edges.Bucket(i)
		if lo != float64(i)*w || hi != float64(i)*w+w {
			t.Fatalf("bucket %d = [%v, %v), want [%v, %v)", i, lo, hi, float64(i)*w, float64(i)*w+w)
		}
		if i > 0 {
			_, prevHi := edges.Bucket(i - 1)
			if math.Abs(prevHi-lo) > 1e-12 {
				t.Fatalf("gap between bucket %d and %d: %v vs %v", i-1, i, prevHi, lo)
			}
		}
	}
}

func TestBucketEdgesIndexMatchesLinearScan(t *testing.T) {
	edges, err := NewBucketEdges(0.1, 5.0)
	if err != nil {
		t.Fatalf("NewBucketEdges: %v", err)
	}
	scan := func(x float64) (int, bool) {
		for i := 0; i < edges.Len(); i++ {
			lo, hi := edges.Bucket(i)
			if x >= lo && x < hi {
				return i, true
			}
		}
		return 0, false
	}
	for k := -20; k <= 5200; k++ {
		for _, x := range []float64{float64(k) / 1000, math.Nextafter(float64(k)/1000, -1), math.Nextafter(float64(k)/10, 1)} {
			wantI, wantOK := scan(x)
			gotI, gotOK := edges.Index(x)
			if gotI != wantI || gotOK != wantOK {
				t.Fatalf("Index(%v) = %d,%v; scan = %d,%v", x, gotI, gotOK, wantI, wantOK)
			}
		}
	}
}

func TestBucketEdgesIndexOutOfDomain(t *testing.T) {
	edges, _ := NewBucketEdges(0.1, 5.0)
	for _, x := range []float64{-0.0001, edges.Domain(), 5.0, 1e9, math.Inf(1), math.Inf(-1), math.NaN()} {
		if i, ok := edges.Index(x); ok {
			t.Fatalf("Index(%v) = %d, expected no bucket", x, i)
		}
	}
	if i, ok := edges.Index(1.0); !ok || i != 10 {
		t.Fatalf("Index(1.0) = %d,%v, want 10", i, ok)
	}
}

func TestBucketEdgesLabels(t *testing.T) {
	edges, _ := NewBucketEdges(0.1, 5.0)
	labels := edges.Labels()
	if len(labels) != 50 {
		t.Fatalf("expected 50 labels, got %d", len(labels))
	}
	if labels[0] != "0.05" || labels[1] != "0.15" || labels[49] != "4.95" {
		t.Fatalf("unexpected labels %q %q %q", labels[0], labels[1], labels[49])
	}
}

func TestNewBucketEdgesRejects(t *testing.T) {
	cases := []struct {
		name          string
		width, domain float64
	}{
		{"zero width", 0, 5},
		{"negative width", -0.1, 5},
		{"nan width", math.NaN(), 5},
		{"domain below width", 0.5, 0.1},
		{"infinite domain", 0.1, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBucketEdges(tc.width, tc.domain)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

package chart

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"RegimeSim/internal/domain/models"
)

func TestLineChartRendersPNG(t *testing.T) {
	c := NewLineChart(WithSize(320, 240))
	img, err := c.Render(context.Background(), []models.Series{
		{Label: "risk", Values: []float64{0, 3, 10, 4}},
		{Label: "safe", Values: []float64{1, 8, 6, 2}},
	}, []string{"0.05", "0.15", "0.25", "0.35"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(img, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("output is not a PNG")
	}
}

func TestLineChartRendersSVG(t *testing.T) {
	c := NewLineChart(WithFormat("svg"), WithTitle("t", "x", "y"))
	img, err := c.Render(context.Background(), []models.Series{{Label: "a", Values: []float64{1, 2}}}, []string{"a", "b"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Contains(img, []byte("<svg")) {
		t.Fatalf("output is not an SVG")
	}
}

func TestLineChartErrors(t *testing.T) {
	c := NewLineChart()
	if _, err := c.Render(context.Background(), nil, []string{"a"}); !errors.Is(err, ErrNoSeries) {
		t.Fatalf("expected ErrNoSeries, got %v", err)
	}
	if _, err := c.Render(context.Background(), []models.Series{{Label: "a", Values: []float64{1}}}, []string{"a", "b"}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
	if _, err := NewLineChart(WithFormat("bmp")).Render(context.Background(), []models.Series{{Label: "a", Values: []float64{1}}}, []string{"a"}); err == nil {
		t.Fatalf("expected unsupported format error")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Render(ctx, []models.Series{{Label: "a", Values: []float64{1}}}, []string{"a"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

package chart

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"RegimeSim/internal/domain/models"
)

// ErrNoSeries is returned when there is nothing to draw.
var ErrNoSeries = errors.New("chart: no series")

// pixels per inch of the raster backends
const dpi = 96

// Option configures LineChart.
type Option func(*Config)

// Config holds chart configuration.
type Config struct {
	Title  string
	XLabel string
	YLabel string
	Width  int // pixels
	Height int // pixels
	Format string
}

// WithTitle sets the chart title and axis labels.
func WithTitle(title, xLabel, yLabel string) Option {
	return func(c *Config) {
		c.Title = title
		c.XLabel = xLabel
		c.YLabel = yLabel
	}
}

// WithSize sets the raster size in pixels.
func WithSize(width, height int) Option {
	return func(c *Config) {
		if width > 0 && height > 0 {
			c.Width = width
			c.Height = height
		}
	}
}

// WithFormat sets the output format understood by gonum/plot ("png", "svg", ...).
func WithFormat(format string) Option {
	return func(c *Config) {
		if format != "" {
			c.Format = format
		}
	}
}

// LineChart draws every series as a line over a shared categorical x axis.
type LineChart struct {
	cfg *Config
}

// NewLineChart creates a LineChart.
func NewLineChart(opts ...Option) *LineChart {
	cfg := &Config{
		Title:  "Terminal value distribution",
		XLabel: "terminal value",
		YLabel: "trials",
		Width:  1024,
		Height: 768,
		Format: "png",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &LineChart{cfg: cfg}
}

// Render implements repository.ChartRenderer.
func (c *LineChart) Render(ctx context.Context, series []models.Series, categories []string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, ErrNoSeries
	}

	p := plot.New()
	p.Title.Text = c.cfg.Title
	p.X.Label.Text = c.cfg.XLabel
	p.Y.Label.Text = c.cfg.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range series {
		if len(s.Values) != len(categories) {
			return nil, fmt.Errorf("chart: series %q has %d values for %d categories", s.Label, len(s.Values), len(categories))
		}
		xys := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			xys[j].X = float64(j)
			xys[j].Y = v
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("chart: series %q: %w", s.Label, err)
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}
	p.NominalX(categories...)

	w := vg.Length(c.cfg.Width) * vg.Inch / dpi
	h := vg.Length(c.cfg.Height) * vg.Inch / dpi
	wt, err := p.WriterTo(w, h, c.cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("chart: encode %s: %w", c.cfg.Format, err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("chart: write %s: %w", c.cfg.Format, err)
	}
	return buf.Bytes(), nil
}

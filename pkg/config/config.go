package config

import (
	"fmt"

	"github.com/creasty/defaults"

	"RegimeSim/pkg/logger"
	"RegimeSim/pkg/validate"
)

// Config holds every run parameter. There is no file or environment source:
// values come from the `default` tags and from code.
type Config struct {
	Environment string `default:"development" validate:"oneof=development production test"`
	Log         logger.Config
	Simulation  Simulation
	Output      Output
}

type Simulation struct {
	Sims  int `default:"1000000" validate:"gt=0"`
	Steps int `default:"300" validate:"gte=0"`

	SignalMean      float64
	SignalStdDev    float64 `default:"0.01" validate:"gt=0"`
	SignalThreshold float64 `default:"0.005"`

	NormalVolMean   float64
	NormalVolStdDev float64 `default:"0.01" validate:"gt=0"`
	HighVolMean     float64
	HighVolStdDev   float64 `default:"0.05" validate:"gt=0"`

	BucketWidth  float64 `default:"0.1" validate:"gt=0"`
	BucketDomain float64 `default:"5.0" validate:"gtefield=BucketWidth"`

	Workers int `validate:"gte=0"` // 0 means GOMAXPROCS

	RiskLabel string `default:"risk" validate:"required"`
	SafeLabel string `default:"safe" validate:"required,nefield=RiskLabel"`
}

type Output struct {
	Path   string `default:"outcomes.png" validate:"required"`
	Format string `default:"png" validate:"oneof=png jpg svg pdf"`
	Width  int    `default:"1024" validate:"gt=0"`
	Height int    `default:"768" validate:"gt=0"`
	Title  string `default:"Terminal value: trade vs. sit out high-volatility days"`
}

// Default returns the configuration of the reference run.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

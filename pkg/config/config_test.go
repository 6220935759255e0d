package config

import (
	"errors"
	"testing"

	"RegimeSim/pkg/validate"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	s := c.Simulation
	if s.Sims != 1000000 || s.Steps != 300 {
		t.Fatalf("sims/steps = %d/%d", s.Sims, s.Steps)
	}
	if s.SignalStdDev != 0.01 || s.SignalThreshold != 0.005 {
		t.Fatalf("signal = %v/%v", s.SignalStdDev, s.SignalThreshold)
	}
	if s.NormalVolStdDev != 0.01 || s.HighVolStdDev != 0.05 {
		t.Fatalf("volatility = %v/%v", s.NormalVolStdDev, s.HighVolStdDev)
	}
	if s.BucketWidth != 0.1 || s.BucketDomain != 5.0 {
		t.Fatalf("buckets = %v/%v", s.BucketWidth, s.BucketDomain)
	}
	if s.RiskLabel != "risk" || s.SafeLabel != "safe" {
		t.Fatalf("labels = %q/%q", s.RiskLabel, s.SafeLabel)
	}
	if c.Output.Path != "outcomes.png" || c.Output.Format != "png" {
		t.Fatalf("output = %+v", c.Output)
	}
	if c.Log.Level != "info" || c.Log.Format != "console" || c.Log.Output != "stdout" {
		t.Fatalf("log = %+v", c.Log)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero signal std", func(c *Config) { c.Simulation.SignalStdDev = 0 }},
		{"negative high vol std", func(c *Config) { c.Simulation.HighVolStdDev = -1 }},
		{"domain below width", func(c *Config) { c.Simulation.BucketDomain = 0.01 }},
		{"same labels", func(c *Config) { c.Simulation.SafeLabel = c.Simulation.RiskLabel }},
		{"bad format", func(c *Config) { c.Output.Format = "gif" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Default()
			if err != nil {
				t.Fatalf("Default: %v", err)
			}
			tc.mutate(c)
			if err := c.Validate(); !errors.Is(err, validate.ErrInvalid) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

package di

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"RegimeSim/pkg/config"
)

func TestInitializeAppRunsEndToEnd(t *testing.T) {
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	cfg.Environment = "test"
	cfg.Log.Level = "warn"
	cfg.Log.Output = "stderr"
	cfg.Simulation.Sims = 2000
	cfg.Simulation.Steps = 60
	cfg.Output.Path = filepath.Join(t.TempDir(), "outcomes.png")
	cfg.Output.Width = 400
	cfg.Output.Height = 300

	app, err := InitializeApp(cfg)
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	img, err := os.ReadFile(cfg.Output.Path)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if !bytes.HasPrefix(img, []byte("\x89PNG")) {
		t.Fatalf("artifact is not a PNG")
	}
}

func TestInitializeAppRejectsBadSimulation(t *testing.T) {
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	cfg.Log.Output = "stderr"
	cfg.Simulation.HighVolStdDev = 0

	if _, err := InitializeApp(cfg); err == nil {
		t.Fatalf("expected configuration error before any trial runs")
	}
}

func TestInitializeAppCancelledWritesNothing(t *testing.T) {
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	cfg.Log.Level = "error"
	cfg.Log.Output = "stderr"
	cfg.Output.Path = filepath.Join(t.TempDir(), "outcomes.png")

	app, err := InitializeApp(cfg)
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.Run(ctx); err == nil {
		t.Fatalf("expected cancellation error")
	}
	if _, err := os.Stat(cfg.Output.Path); !os.IsNotExist(err) {
		t.Fatalf("no artifact may be written on failure")
	}
}

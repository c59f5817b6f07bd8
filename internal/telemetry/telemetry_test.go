package telemetry

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewLoggerTagsRunID(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stderr")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()
	orig := os.Stderr
	os.Stderr = f
	logger := NewLogger(slog.LevelInfo)
	os.Stderr = orig
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	logger.Info("hello")
	out, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(out), "run_id") {
		t.Fatalf("log output %q carries no run_id attribute", out)
	}
}

func TestRegistryObserveUpdatesGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistry(reg)

	r.Observe(Snapshot{Size: 1000, DeltaBetaF: 12.5, MeanEnergy: -3.2, RhoT: 1.1, RhoS: 950})

	if got := testutil.ToFloat64(r.size); got != 1000 {
		t.Fatalf("pamc_population_size = %v, want 1000", got)
	}
	if got := testutil.ToFloat64(r.deltaBetaF); got != 12.5 {
		t.Fatalf("pamc_delta_beta_f = %v, want 12.5", got)
	}
	if got := testutil.ToFloat64(r.rhoT); got != 1.1 {
		t.Fatalf("pamc_rho_t = %v, want 1.1", got)
	}
	if got := testutil.ToFloat64(r.rhoS); got != 950 {
		t.Fatalf("pamc_rho_s = %v, want 950", got)
	}
	if got := testutil.ToFloat64(r.resamples); got != 1 {
		t.Fatalf("pamc_resample_total = %v, want 1", got)
	}

	r.Observe(Snapshot{Size: 900})
	if got := testutil.ToFloat64(r.resamples); got != 2 {
		t.Fatalf("pamc_resample_total after second Observe = %v, want 2", got)
	}
}

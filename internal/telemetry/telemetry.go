// Package telemetry provides the structured logging and metrics surface
// every cmd driver shares: a tint-backed slog.Logger tagged with a
// per-run correlation id, and a Prometheus registry tracking the
// population's resampling-quality diagnostics over the course of a run.
package telemetry

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Snapshot is a point-in-time read of a population's diagnostics, as
// returned by pamc.Population.Metrics. It carries no behavior of its
// own; Registry.Observe is the only thing that consumes it.
type Snapshot struct {
	Size       int
	DeltaBetaF float64
	MeanEnergy float64
	RhoT       float64
	RhoS       float64
}

// NewLogger builds a colorized stderr console logger at level,
// timestamped HH:MM:SS; it does not check whether stderr is a terminal
// before emitting color codes. Every line carries a run_id
// attribute so concurrent or repeated runs can be told apart in a
// shared log stream.
func NewLogger(level slog.Level) *slog.Logger {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	})
	runID := uuid.New().String()
	return slog.New(handler).With("run_id", runID)
}

// Registry holds the Prometheus collectors a driver updates once per
// annealing step. It is safe to construct more than one per process
// only if each uses a distinct prometheus.Registerer.
type Registry struct {
	size       prometheus.Gauge
	deltaBetaF prometheus.Gauge
	rhoT       prometheus.Gauge
	rhoS       prometheus.Gauge
	resamples  prometheus.Counter
}

// NewRegistry registers the pamc_* collectors against reg. Pass
// prometheus.DefaultRegisterer to expose them on the default
// /metrics handler.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)
	return &Registry{
		size: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pamc_population_size",
			Help: "Current number of live replicas in the population.",
		}),
		deltaBetaF: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pamc_delta_beta_f",
			Help: "Accumulated free-energy change since run start.",
		}),
		rhoT: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pamc_rho_t",
			Help: "Second-moment concentration of family sizes.",
		}),
		rhoS: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pamc_rho_s",
			Help: "Effective number of distinct families (Shannon diversity).",
		}),
		resamples: factory.NewCounter(prometheus.CounterOpts{
			Name: "pamc_resample_total",
			Help: "Number of resample steps completed.",
		}),
	}
}

// Observe records snap against the gauges and increments the resample
// counter. Call it once per completed resample step.
func (r *Registry) Observe(snap Snapshot) {
	r.size.Set(float64(snap.Size))
	r.deltaBetaF.Set(snap.DeltaBetaF)
	r.rhoT.Set(snap.RhoT)
	r.rhoS.Set(snap.RhoS)
	r.resamples.Inc()
}

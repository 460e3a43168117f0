// Package metrics exposes Prometheus collectors for pool activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mem-vault/mem-coin/pkg/amm"
)

const namespace = "memvault"

// Result label values for Swaps.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

type Metrics struct {
	Swaps             *prometheus.CounterVec
	SwapVolume        *prometheus.CounterVec
	SwapDuration      prometheus.Histogram
	AdminFeeWithdrawn *prometheus.CounterVec
	Pools             prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swaps_total",
			Help:      "Swaps attempted, by input side and result.",
		}, []string{"side", "result"}),
		SwapVolume: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swap_input_volume_total",
			Help:      "Input amount of committed swaps, by input side.",
		}, []string{"side"}),
		SwapDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "swap_duration_seconds",
			Help:      "Time spent executing a swap.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		AdminFeeWithdrawn: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_fee_withdrawn_total",
			Help:      "Admin fees withdrawn by pool owners, by side.",
		}, []string{"side"}),
		Pools: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pools",
			Help:      "Number of registered pools.",
		}),
	}

	for _, c := range []prometheus.Collector{m.Swaps, m.SwapVolume, m.SwapDuration, m.AdminFeeWithdrawn, m.Pools} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// PublishSwap records the volume of a committed swap.
func (m *Metrics) PublishSwap(e amm.SwapEvent) {
	m.SwapVolume.WithLabelValues(e.InputSide.String()).Add(float64(e.InputAmount))
}

// ObserveSwap counts a swap attempt.
func (m *Metrics) ObserveSwap(side amm.Side, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.Swaps.WithLabelValues(side.String(), result).Inc()
}

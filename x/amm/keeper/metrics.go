package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// swap outcome labels
const (
	statusOK       = "ok"
	statusRejected = "rejected"
	statusError    = "error"
)

// Metrics holds the Prometheus metrics for the amm module
type Metrics struct {
	SwapsTotal         *prometheus.CounterVec
	SwapVolume         *prometheus.CounterVec
	SlippageRejections prometheus.Counter
	PoolsTotal         prometheus.Gauge
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers the amm metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "venue",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swap commands by outcome",
				},
				[]string{"status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "venue",
					Subsystem: "amm",
					Name:      "swap_volume_total",
					Help:      "Total committed input volume in base units",
				},
				[]string{"denom"},
			),
			SlippageRejections: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "venue",
					Subsystem: "amm",
					Name:      "slippage_rejections_total",
					Help:      "Swaps aborted by the slippage bound",
				},
			),
			PoolsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "venue",
					Subsystem: "amm",
					Name:      "pools_total",
					Help:      "Number of pools created",
				},
			),
		}
	})
	return metrics
}

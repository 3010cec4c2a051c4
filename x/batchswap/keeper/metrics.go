package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/landau-swap/landau/x/batchswap/types"
)

// BatchSwapMetrics holds all Prometheus metrics for the batchswap module
type BatchSwapMetrics struct {
	// Order metrics
	OrdersPlaced *prometheus.CounterVec
	QueueDepth   *prometheus.GaugeVec

	// Settlement metrics
	BatchesSettled    *prometheus.CounterVec
	NettedVolume      *prometheus.CounterVec
	FeesCollected     *prometheus.CounterVec
	SettlementLatency prometheus.Histogram

	// Liquidity metrics
	LiquidityChanges *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec
	PoolsTotal       prometheus.Counter
}

var (
	batchSwapMetricsOnce sync.Once
	batchSwapMetrics     *BatchSwapMetrics
)

// NewBatchSwapMetrics creates and registers batchswap metrics (singleton pattern)
func NewBatchSwapMetrics() *BatchSwapMetrics {
	batchSwapMetricsOnce.Do(func() {
		batchSwapMetrics = &BatchSwapMetrics{
			OrdersPlaced: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "landau",
					Subsystem: "batchswap",
					Name:      "orders_placed_total",
					Help:      "Total number of orders queued",
				},
				[]string{"pool_id", "direction"},
			),
			QueueDepth: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "landau",
					Subsystem: "batchswap",
					Name:      "queue_depth",
					Help:      "Pending orders per pool",
				},
				[]string{"pool_id"},
			),
			BatchesSettled: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "landau",
					Subsystem: "batchswap",
					Name:      "batches_settled_total",
					Help:      "Settlement attempts by outcome",
				},
				[]string{"pool_id", "status"},
			),
			NettedVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "landau",
					Subsystem: "batchswap",
					Name:      "netted_volume_total",
					Help:      "Net batch volume pushed through the curve, in input units",
				},
				[]string{"pool_id", "direction"},
			),
			FeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "landau",
					Subsystem: "batchswap",
					Name:      "fees_collected_total",
					Help:      "Resistance fees collected in asset B",
				},
				[]string{"pool_id"},
			),
			SettlementLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "landau",
					Subsystem: "batchswap",
					Name:      "settlement_latency_seconds",
					Help:      "Time spent settling a batch",
					Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
				},
			),
			LiquidityChanges: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "landau",
					Subsystem: "batchswap",
					Name:      "liquidity_changes_total",
					Help:      "Liquidity additions and removals",
				},
				[]string{"pool_id", "action"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "landau",
					Subsystem: "batchswap",
					Name:      "pool_reserves",
					Help:      "Current pool reserves",
				},
				[]string{"pool_id", "asset"},
			),
			PoolsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "landau",
					Subsystem: "batchswap",
					Name:      "pools_initialized_total",
					Help:      "Number of pools initialized",
				},
			),
		}
	})
	return batchSwapMetrics
}

// recordPool refreshes the per-pool gauges after a committed state change.
func (m *BatchSwapMetrics) recordPool(pool types.Pool) {
	m.PoolReserves.WithLabelValues(pool.Id, "a").Set(intToFloat(pool.ReserveA))
	m.PoolReserves.WithLabelValues(pool.Id, "b").Set(intToFloat(pool.ReserveB))
	m.QueueDepth.WithLabelValues(pool.Id).Set(float64(len(pool.PendingOrders)))
}

func intToFloat(v math.Int) float64 {
	if v.IsNil() {
		return 0
	}
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	return f
}

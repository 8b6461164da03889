package region

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const reasonLabel = "reason"

var (
	regionsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "acr_regions_built_total",
		Help: "The number of regions finalized and claimed.",
	})

	branchesSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acr_branches_skipped_total",
		Help: "The number of child branches abandoned, by reason.",
	}, []string{reasonLabel})

	seedOverflow = promauto.NewCounter(prometheus.CounterOpts{
		Name: "acr_seed_overflow_total",
		Help: "The number of child seeds dropped by the per-region cap.",
	})

	regionArea = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "acr_region_area_cells",
		Help:    "The area of finalized regions in cells.",
		Buckets: prometheus.ExponentialBuckets(4, 2, 12),
	})
)

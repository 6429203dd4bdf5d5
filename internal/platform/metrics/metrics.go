// Package metrics expone métricas Prometheus del servicio.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rescuedogs"

var (
	// FetchBatchesTotal cuenta los lotes emitidos por el batch fetcher.
	FetchBatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_batches_total",
			Help:      "Total number of dog fetch batches issued",
		},
	)

	// DogFetchTotal cuenta cada fetch individual por resultado (ok|not_found|error).
	DogFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dog_fetch_total",
			Help:      "Total number of single dog fetches by outcome",
		},
		[]string{"outcome"},
	)

	// InsightsTotal cuenta los cálculos de insights por modo (basic|enhanced|degraded).
	InsightsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insights_computations_total",
			Help:      "Total number of insights computations by mode",
		},
		[]string{"mode"},
	)

	// FavoritesMutationsTotal cuenta mutaciones efectivas del set de favoritos.
	FavoritesMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "favorites_mutations_total",
			Help:      "Total number of favorite set mutations by kind",
		},
		[]string{"kind"},
	)

	// StorageFallbackTotal cuenta las veces que un store perdió el storage y
	// siguió solo en memoria hasta el próximo reintento.
	StorageFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "favorites_storage_fallback_total",
			Help:      "Total number of times a favorites store lost its storage and kept its set in memory",
		},
	)
)

func RecordDogFetch(outcome string) {
	DogFetchTotal.WithLabelValues(outcome).Inc()
}

func RecordInsights(mode string) {
	InsightsTotal.WithLabelValues(mode).Inc()
}

func RecordMutation(kind string) {
	FavoritesMutationsTotal.WithLabelValues(kind).Inc()
}

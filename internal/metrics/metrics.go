// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentsRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "headmeta_documents_rendered_total",
			Help: "Cumulative number of vue-meta documents rendered, by source.",
		}, []string{"source"})

	RenderErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "headmeta_render_errors_total",
			Help: "Cumulative number of failed renders, by reason.",
		}, []string{"reason"})

	DocumentElements = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "headmeta_document_elements",
			Help:    "Number of elements per rendered document section.",
			Buckets: prometheus.LinearBuckets(0, 4, 8),
		}, []string{"section"})

	PageCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "headmeta_page_cache_hits_total",
			Help: "Cumulative number of page descriptors served from cache.",
		})

	PageCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "headmeta_page_cache_misses_total",
			Help: "Cumulative number of page descriptors loaded from the store.",
		})

	PageLoadErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "headmeta_page_load_errors_total",
			Help: "Cumulative number of page descriptor load errors.",
		})
)

func init() {
	prometheus.MustRegister(
		DocumentsRendered,
		RenderErrors,
		DocumentElements,
		PageCacheHits,
		PageCacheMisses,
		PageLoadErrors,
	)
}

// ObserveDocument records one rendered document and its section sizes.
func ObserveDocument(source string, counts map[string]int) {
	DocumentsRendered.WithLabelValues(source).Inc()
	for section, n := range counts {
		DocumentElements.WithLabelValues(section).Observe(float64(n))
	}
}

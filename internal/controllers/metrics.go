package controllers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gophim_upstream_failures_total",
		Help: "Upstream movie API failures by operation.",
	}, []string{"operation"})

	fallbackServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gophim_fallback_served_total",
		Help: "Catalog responses substituted with static fallback data.",
	}, []string{"operation"})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gophim_catalog_cache_hits_total",
		Help: "Catalog cache hits.",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gophim_catalog_cache_misses_total",
		Help: "Catalog cache misses.",
	})
)

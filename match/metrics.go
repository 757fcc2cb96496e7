package match

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	staticBuildCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpmatch_static_cache_builds_total",
			Help: "Counter for static matches built by running their build function.",
		},
		[]string{"signature"},
	)
	staticHitCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpmatch_static_cache_hits_total",
			Help: "Counter for static matches served from the cache.",
		},
		[]string{"signature"},
	)
	staticEvictionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpmatch_static_cache_evictions_total",
			Help: "Counter for static matches evicted by clearing the cache.",
		},
		[]string{"signature"},
	)
)

func init() {
	prometheus.MustRegister(staticBuildCounter)
	prometheus.MustRegister(staticHitCounter)
	prometheus.MustRegister(staticEvictionCounter)
}

// Package metrics holds the Prometheus collectors shared by the store and
// the HTTP surface. Collectors count even when unregistered; serve
// registers them on its own registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Mutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "linkshelf", Name: "mutations_total", Help: "Number of successful record mutations by entity and operation."},
		[]string{"entity", "op"},
	)
	SaveFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "linkshelf", Name: "save_failures_total", Help: "Number of document flushes that failed."},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "linkshelf", Name: "http_requests_total", Help: "Number of HTTP requests by route and status code."},
		[]string{"route", "status"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(Mutations)
	reg.MustRegister(SaveFailures)
	reg.MustRegister(HTTPRequests)
}

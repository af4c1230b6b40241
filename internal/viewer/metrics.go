package viewer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	registry *prometheus.Registry

	requests   *prometheus.CounterVec
	graphNodes prometheus.Gauge
	graphEdges prometheus.Gauge
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	factory := promauto.With(reg)
	return &metrics{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "topicgraph_http_requests_total",
				Help: "Total number of HTTP requests served by the viewer",
			},
			[]string{"route", "code"},
		),
		graphNodes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "topicgraph_graph_nodes",
			Help: "Number of nodes in the last served graph",
		}),
		graphEdges: factory.NewGauge(prometheus.GaugeOpts{
			Name: "topicgraph_graph_edges",
			Help: "Number of edges in the last served graph",
		}),
	}
}

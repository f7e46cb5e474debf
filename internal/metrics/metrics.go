// Package metrics exposes Prometheus counters for dialog navigation.
package metrics

import (
	"context"

	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "dialogtree"

// Collector holds the navigation counters on its own registry.
type Collector struct {
	Registry *prometheus.Registry

	nodeVisits      *prometheus.CounterVec
	choicesAccepted *prometheus.CounterVec
	choicesRejected *prometheus.CounterVec
}

// New registers the dialog counters plus the Go and process collectors.
func New() *Collector {
	c := &Collector{
		Registry: prometheus.NewRegistry(),
		nodeVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "node_visits_total",
				Help:      "Total number of node presentations.",
			},
			[]string{"node_id"},
		),
		choicesAccepted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "choices_accepted_total",
				Help:      "Choices that led to a transition.",
			},
			[]string{"node_id", "next_node_id"},
		),
		choicesRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "choices_rejected_total",
				Help:      "Choices rejected because the option does not exist.",
			},
			[]string{"node_id"},
		),
	}

	c.Registry.MustRegister(
		c.nodeVisits,
		c.choicesAccepted,
		c.choicesRejected,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Hooks returns lifecycle hooks that feed the counters.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			c.nodeVisits.WithLabelValues(e.NodeID).Inc()
		},
		OnChoiceAccepted: func(ctx context.Context, e *domain.ChoiceEvent) {
			c.choicesAccepted.WithLabelValues(e.NodeID, e.NextNodeID).Inc()
		},
		OnChoiceRejected: func(ctx context.Context, e *domain.ChoiceEvent) {
			c.choicesRejected.WithLabelValues(e.NodeID).Inc()
		},
	}
}

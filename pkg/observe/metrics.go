package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/vrange/pkg/vdom"
)

// MetricsConfig configures Metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vrange").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for pass duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures Metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "vrange",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics exports reconciliation counters to Prometheus.
//
// Metrics collected:
//   - vrange_nodes_mounted_total: element and text nodes given a live node
//   - vrange_nodes_reused_total: nodes that kept their live node
//   - vrange_nodes_replaced_total: subtrees rebuilt at an old position
//   - vrange_children_appended_total: children appended after the tail
//   - vrange_passes_total: passes by phase
//   - vrange_pass_duration_seconds: pass duration by phase
type Metrics struct {
	mounted      prometheus.Counter
	reused       prometheus.Counter
	replaced     prometheus.Counter
	appended     prometheus.Counter
	passes       *prometheus.CounterVec
	passDuration *prometheus.HistogramVec
}

var _ vdom.Observer = (*Metrics)(nil)

// NewMetrics registers the collectors. Registering twice against the same
// registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		})
	}

	return &Metrics{
		mounted:  counter("nodes_mounted_total", "Total number of element and text nodes mounted"),
		reused:   counter("nodes_reused_total", "Total number of nodes that kept their live node"),
		replaced: counter("nodes_replaced_total", "Total number of subtrees replaced at an old position"),
		appended: counter("children_appended_total", "Total number of children appended during reconciliation"),

		passes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "passes_total",
			Help:        "Total number of render and update passes",
			ConstLabels: config.ConstLabels,
		}, []string{"phase"}),

		passDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pass_duration_seconds",
			Help:        "Render and update pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"phase"}),
	}
}

func (m *Metrics) NodeMounted(*vdom.VNode)       { m.mounted.Inc() }
func (m *Metrics) NodeReused(*vdom.VNode)        { m.reused.Inc() }
func (m *Metrics) NodeReplaced(_, _ *vdom.VNode) { m.replaced.Inc() }
func (m *Metrics) ChildAppended(*vdom.VNode)     { m.appended.Inc() }

func (m *Metrics) PassFinished(p vdom.Pass) {
	m.passes.WithLabelValues(p.Phase).Inc()
	m.passDuration.WithLabelValues(p.Phase).Observe(p.Duration.Seconds())
}

// Package toastmetrics exports toast store activity as Prometheus metrics.
//
//	m := toastmetrics.New(toastmetrics.WithRegistry(reg))
//	p := toast.NewProvider(cfg, toast.WithObserver(m))
package toastmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "toastkit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are added to every metric.
	ConstLabels prometheus.Labels

	// Registry is where metrics are registered.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collector.
type Option func(*Config)

func WithNamespace(namespace string) Option {
	return func(c *Config) { c.Namespace = namespace }
}

func WithSubsystem(subsystem string) Option {
	return func(c *Config) { c.Subsystem = subsystem }
}

func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) { c.ConstLabels = labels }
}

func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) { c.Registry = registry }
}

func defaultConfig() Config {
	return Config{
		Namespace: "toastkit",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics implements toast.Observer.
type Metrics struct {
	shown   *prometheus.CounterVec
	removed *prometheus.CounterVec
	visible *prometheus.GaugeVec
}

var _ toast.Observer = (*Metrics)(nil)

// New creates and registers the toast metrics.
func New(opts ...Option) *Metrics {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Metrics{
		shown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "toasts_shown_total",
			Help:        "Total number of toasts shown",
			ConstLabels: cfg.ConstLabels,
		}, []string{"type", "position"}),

		removed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "toasts_removed_total",
			Help:        "Total number of toasts removed, by reason",
			ConstLabels: cfg.ConstLabels,
		}, []string{"reason", "position"}),

		visible: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "toasts_visible",
			Help:        "Number of toasts currently visible",
			ConstLabels: cfg.ConstLabels,
		}, []string{"position"}),
	}
}

func (m *Metrics) ToastShown(t toast.Toast) {
	m.shown.WithLabelValues(string(t.Type), string(t.Position)).Inc()
	m.visible.WithLabelValues(string(t.Position)).Inc()
}

func (m *Metrics) ToastRemoved(t toast.Toast, reason toast.Reason) {
	m.removed.WithLabelValues(reason.String(), string(t.Position)).Inc()
	m.visible.WithLabelValues(string(t.Position)).Dec()
}

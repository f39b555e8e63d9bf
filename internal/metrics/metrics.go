// Package metrics exposes Prometheus counters for UI activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Shell labels which of the two page shells rendered a view.
const (
	ShellSPA  = "spa"
	ShellSite = "site"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry     *prometheus.Registry
	ViewRenders  *prometheus.CounterVec
	Transitions  *prometheus.CounterVec
	MenuToggles  prometheus.Counter
	DraftUpdates *prometheus.CounterVec
	InertActions *prometheus.CounterVec
}

// New registers the UI collectors plus the Go runtime collectors.
// sessions, when non-nil, is sampled for the live session gauge.
func New(sessions func() int) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		ViewRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gopang",
			Name:      "view_renders_total",
			Help:      "Views rendered, by view and shell.",
		}, []string{"view", "shell"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gopang",
			Name:      "navigation_transitions_total",
			Help:      "Single-page navigation transitions.",
		}, []string{"from", "to"}),
		MenuToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gopang",
			Name:      "menu_toggles_total",
			Help:      "Mobile menu toggles.",
		}),
		DraftUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gopang",
			Name:      "draft_updates_total",
			Help:      "Waste record draft field updates.",
		}, []string{"field"}),
		InertActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gopang",
			Name:      "inert_actions_total",
			Help:      "Activations of controls that have no effect.",
		}, []string{"action"}),
	}
	reg.MustRegister(
		m.ViewRenders, m.Transitions, m.MenuToggles, m.DraftUpdates, m.InertActions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if sessions != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "gopang",
			Name:      "ui_sessions",
			Help:      "Live UI sessions held in memory.",
		}, func() float64 { return float64(sessions()) }))
	}
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

const widgetNamespace = "widget"

// WidgetMetrics counts the helper operations served over HTTP.
// A nil *WidgetMetrics records nothing.
type WidgetMetrics struct {
	normalizations  *prometheus.CounterVec
	languageLookups *prometheus.CounterVec
	oauthMerges     *prometheus.CounterVec
}

// NewWidgetMetrics creates the widget counters and registers them with reg.
// A nil reg means prometheus.DefaultRegisterer, which /-/metrics serves.
func NewWidgetMetrics(reg prometheus.Registerer) (*WidgetMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &WidgetMetrics{
		normalizations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: widgetNamespace,
			Name:      "error_normalizations_total",
			Help:      "Failed requests normalized into error bodies, by the rule that produced the summary.",
		}, []string{"outcome"}),
		languageLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: widgetNamespace,
			Name:      "language_lookups_total",
			Help:      "Language fallback chains computed, by where the requested languages came from.",
		}, []string{"source"}),
		oauthMerges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: widgetNamespace,
			Name:      "oauth_merges_total",
			Help:      "OAuth option merges, by result.",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{m.normalizations, m.languageLookups, m.oauthMerges} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveNormalization counts one normalized failure.
func (m *WidgetMetrics) ObserveNormalization(outcome string) {
	if m == nil {
		return
	}

	m.normalizations.WithLabelValues(outcome).Inc()
}

// ObserveLanguageLookup counts one fallback chain computation.
func (m *WidgetMetrics) ObserveLanguageLookup(source string) {
	if m == nil {
		return
	}

	m.languageLookups.WithLabelValues(source).Inc()
}

// ObserveOAuthMerge counts one OAuth merge; failed reports a rejected option set.
func (m *WidgetMetrics) ObserveOAuthMerge(failed bool) {
	if m == nil {
		return
	}

	result := "ok"
	if failed {
		result = "error"
	}

	m.oauthMerges.WithLabelValues(result).Inc()
}

package webscore

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type serviceMetrics struct {
	durationSummary *prometheus.SummaryVec
	analysisCounter *prometheus.CounterVec
	statusCounter   *prometheus.CounterVec
	scoreSummary    prometheus.Summary
}

var (
	metricsOnce sync.Once
	metrics     *serviceMetrics
)

func setupMetrics() *serviceMetrics {
	metricsOnce.Do(func() {
		const prometheusLabelOutcome = "outcome"
		const prometheusLabelStatus = "status"

		m := &serviceMetrics{}

		m.durationSummary = prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "webscore_analysis_durations_seconds",
				Help:       "analysis duration including fetches and check evaluation",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{prometheusLabelOutcome},
		)

		m.analysisCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webscore_analysis_total",
				Help: "number of analyses by outcome",
			},
			[]string{prometheusLabelOutcome},
		)

		m.statusCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webscore_fetch_status_total",
				Help: "status codes returned by analyzed pages",
			},
			[]string{prometheusLabelStatus},
		)

		m.scoreSummary = prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name:       "webscore_total_scores",
				Help:       "distribution of total scores",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01},
			},
		)

		prometheus.MustRegister(
			m.durationSummary,
			m.analysisCounter,
			m.statusCounter,
			m.scoreSummary,
		)
		metrics = m
	})
	return metrics
}

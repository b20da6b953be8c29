// SPDX-License-Identifier: MIT

package pipeline

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "fibernet"

// Metrics holds the pipeline collectors. A nil *Metrics records nothing.
type Metrics struct {
	StageDuration *prometheus.HistogramVec
	StageFailures *prometheus.CounterVec
	Cases         *prometheus.CounterVec
	MaxFlowValue  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each pipeline stage.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"stage"}),
		StageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "stage_failures_total",
			Help:      "Pipeline stages that returned an error.",
		}, []string{"stage"}),
		Cases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cases_total",
			Help:      "Cases processed, by outcome.",
		}, []string{"result"}),
		MaxFlowValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "max_flow_value",
			Help:      "Max-flow value of the most recently solved case.",
		}),
	}
	for _, c := range []prometheus.Collector{m.StageDuration, m.StageFailures, m.Cases, m.MaxFlowValue} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register pipeline metrics")
		}
	}

	return m, nil
}

func (m *Metrics) observeStage(stage string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
	if err != nil {
		m.StageFailures.WithLabelValues(stage).Inc()
	}
}

func (m *Metrics) observeCase(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.Cases.WithLabelValues(result).Inc()
}

func (m *Metrics) observeFlow(v int64) {
	if m == nil {
		return
	}
	m.MaxFlowValue.Set(float64(v))
}

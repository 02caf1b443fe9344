// SPDX-License-Identifier: MIT
// Package telemetry exposes verification metrics through a private
// Prometheus registry.
package telemetry

import (
	"fmt"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/symgraph/verify"
)

const metricsNamespace = "symgraph"

// Metrics holds the collectors of one process.
type Metrics struct {
	reg *prometheus.Registry

	// stageDuration tracks verification stage latency
	stageDuration *prometheus.HistogramVec
	// checksTotal counts checks by name and outcome
	checksTotal *prometheus.CounterVec
	// runsTotal counts runs by profile and result
	runsTotal *prometheus.CounterVec
	// automorphismOrder is the last computed |Aut| per profile
	automorphismOrder *prometheus.GaugeVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		stageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "stage_duration_seconds",
			Help:      "Verification stage duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"stage"}),
		checksTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "checks_total",
			Help:      "Verification checks by name and outcome",
		}, []string{"check", "outcome"}),
		runsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Verification runs by profile and result",
		}, []string{"profile", "result"}),
		automorphismOrder: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "automorphism_group_order",
			Help:      "Order of the automorphism group from the last run",
		}, []string{"profile"}),
	}
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// StageHook adapts the stage histogram to verify.WithStageHook.
func (m *Metrics) StageHook() func(stage string, elapsed time.Duration) {
	return func(stage string, elapsed time.Duration) {
		m.stageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
	}
}

// ObserveReport records the checks and the result of one run.
func (m *Metrics) ObserveReport(r *verify.Report) {
	for _, c := range r.Checks {
		m.checksTotal.WithLabelValues(c.Name, string(c.Outcome)).Inc()
	}
	result := "pass"
	if !r.Passed() {
		result = "fail"
	}
	m.runsTotal.WithLabelValues(r.Profile, result).Inc()
	if r.AutomorphismGroupOrder != nil {
		order, _ := new(big.Float).SetInt(r.AutomorphismGroupOrder).Float64()
		m.automorphismOrder.WithLabelValues(r.Profile).Set(order)
	}
}

// WriteTextfile dumps all metrics in text exposition format to path.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("telemetry: write %s: %w", path, err)
	}

	return nil
}

// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package observability holds the Prometheus metrics which are shared
// by the REST adapters and the collaborator service clients.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vehapi"

// Outcome labels of the ClientRequests counter.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeNotFound = "not_found"
)

// Metrics holds the Prometheus counters and histograms of a service.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // labels: method, route, status
	HTTPDuration *prometheus.HistogramVec // labels: method, route

	// Collaborator clients metrics.
	ClientRequests *prometheus.CounterVec   // labels: client={pricing,maps}, outcome
	ClientDuration *prometheus.HistogramVec // labels: client
}

// NewMetrics creates all metrics and registers them with the default
// Prometheus registry, so they are exported by promhttp.Handler.
// It must be called once per process.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.ClientRequests,
		m.ClientDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so
// it may be called from multiple tests without "already registered"
// panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Handled REST requests by method, route, and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of REST requests handling in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		ClientRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "client_requests_total",
			Help:      "Requests sent to collaborator services by outcome.",
		}, []string{"client", "outcome"}),
		ClientDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "client_request_duration_seconds",
			Help:      "Collaborator services request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"client"}),
	}
}

// ObserveClient records one request of the client collaborator which
// was started at the start time and has finished with the outcome.
func (m *Metrics) ObserveClient(client, outcome string, start time.Time) {
	m.ClientRequests.WithLabelValues(client, outcome).Inc()
	m.ClientDuration.WithLabelValues(client).Observe(
		time.Since(start).Seconds(),
	)
}

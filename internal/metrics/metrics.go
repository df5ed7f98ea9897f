// Package metrics exposes Prometheus counters for account operations.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	ResultOK               = "ok"
	ResultAlreadyExists    = "already_exists"
	ResultValidationFailed = "validation_failed"
	ResultInvalidToken     = "invalid_token"
	ResultNotFound         = "not_found"
	ResultError            = "error"
)

// Metrics holds the service counters and the registry they live in.
type Metrics struct {
	SignUps  *prometheus.CounterVec
	Logins   *prometheus.CounterVec
	registry *prometheus.Registry
}

// New creates a registry with Go runtime collectors and the service counters.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		SignUps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "usersvc_signups_total",
				Help: "Total number of sign-up attempts by result",
			},
			[]string{"result"},
		),
		Logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "usersvc_logins_total",
				Help: "Total number of token logins by result",
			},
			[]string{"result"},
		),
		registry: reg,
	}

	reg.MustRegister(m.SignUps)
	reg.MustRegister(m.Logins)

	return m
}

// ObserveSignUp counts one sign-up attempt.
func (m *Metrics) ObserveSignUp(result string) {
	m.SignUps.WithLabelValues(result).Inc()
}

// ObserveLogin counts one login attempt.
func (m *Metrics) ObserveLogin(result string) {
	m.Logins.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Package metrics содержит Prometheus-метрики сервиса.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Причины отказа в регистрации, используются как значение метки reason.
const (
	ReasonFieldsRequired  = "fields_required"
	ReasonInvalidSerial   = "invalid_serial"
	ReasonInvalidDuration = "invalid_duration"
)

var (
	RegistrationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "activeusers_registrations_created_total",
		Help: "The total number of accepted registrations",
	})
	RegistrationsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "activeusers_registrations_rejected_total",
		Help: "The total number of rejected registrations by reason",
	}, []string{"reason"})
	RegistrationsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "activeusers_registrations_expired_total",
		Help: "The total number of registrations pruned after expiry",
	})
	RegistrationsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "activeusers_registrations_stored",
		Help: "The number of registrations currently held in memory",
	})
)

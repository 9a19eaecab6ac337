package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_admin_registrations_total",
		Help: "Total number of successful user registrations.",
	})

	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_admin_logins_total",
			Help: "Total number of login attempts by status.",
		},
		[]string{"status"},
	)

	tokensIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_admin_tokens_issued_total",
			Help: "Total number of issued tokens by type.",
		},
		[]string{"type"},
	)

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_admin_token_verifications_total",
			Help: "Total number of token verification attempts by status.",
		},
		[]string{"status"},
	)

	accessLogsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_admin_access_logs_recorded_total",
		Help: "Total number of recorded access log entries.",
	})
)

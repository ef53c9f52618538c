package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	alertsRaised = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arena",
		Subsystem: "governance",
		Name:      "alerts_raised_total",
		Help:      "Monitoring alerts raised, by severity and event type.",
	}, []string{"severity", "event_type"})

	// RateLimitRejections counts privileged calls rejected by the limiter.
	RateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arena",
		Subsystem: "governance",
		Name:      "rate_limit_rejections_total",
		Help:      "Requests rejected by the per-minute rate limiter, by procedure.",
	}, []string{"procedure"})

	// AuditEntriesWritten counts audit rows written, by success flag.
	AuditEntriesWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arena",
		Subsystem: "governance",
		Name:      "audit_entries_total",
		Help:      "Audit entries written, labelled by the recorded outcome.",
	}, []string{"success"})

	// BattleTransitions counts battle status transitions.
	BattleTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arena",
		Subsystem: "battle",
		Name:      "transitions_total",
		Help:      "Battle lifecycle transitions, by resulting status.",
	}, []string{"status"})
)

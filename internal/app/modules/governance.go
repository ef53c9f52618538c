package modules

import (
	"context"

	"github.com/riverqueue/river"

	"versus-arena.io/arena/internal/api/handlers"
	"versus-arena.io/arena/internal/governance/audit"
	"versus-arena.io/arena/internal/governance/ratelimit"
	"versus-arena.io/arena/internal/jobs"
)

// GovernanceModule wires the rate limiter and the audit anomaly detector,
// plus their maintenance workers.
type GovernanceModule struct {
	infra    *Infrastructure
	limiter  *ratelimit.Limiter
	detector *audit.Detector
}

// NewGovernanceModule creates the governance module.
func NewGovernanceModule(infra *Infrastructure) *GovernanceModule {
	return &GovernanceModule{
		infra:    infra,
		limiter:  ratelimit.NewLimiter(infra.Pool, infra.EntClient, infra.Settings, infra.Alerts),
		detector: audit.NewDetector(infra.EntClient, infra.Alerts),
	}
}

func (m *GovernanceModule) Name() string { return "governance" }

// Limiter exposes the shared rate limiter to other modules.
func (m *GovernanceModule) Limiter() *ratelimit.Limiter { return m.limiter }

func (m *GovernanceModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Alerts = m.infra.Alerts
	deps.Settings = m.infra.Settings
}

func (m *GovernanceModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewAnomalyScanWorker(m.detector, m.infra.Config.Engine.AnomalyLookback))
	river.AddWorker(workers, jobs.NewRateLimitGCWorker(m.limiter, m.infra.Config.Engine.CounterRetention))
}

func (m *GovernanceModule) Shutdown(context.Context) error { return nil }

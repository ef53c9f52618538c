// Package app is the composition root; bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"versus-arena.io/arena/internal/api/handlers"
	"versus-arena.io/arena/internal/app/modules"
	"versus-arena.io/arena/internal/config"
	"versus-arena.io/arena/internal/infrastructure"
	"versus-arena.io/arena/internal/jobs"
	"versus-arena.io/arena/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	governanceModule := modules.NewGovernanceModule(infra)
	battleModule := modules.NewBattleModule(infra, governanceModule)
	allModules := []modules.Module{governanceModule, battleModule}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}

	registerPeriodicJobs(infra, cfg)

	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(cfg, server),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Modules: allModules,
	}, nil
}

// registerPeriodicJobs schedules the engine's recurring maintenance. The
// sweep runs on startup too, so battles that expired during downtime are
// finalized immediately.
func registerPeriodicJobs(infra *modules.Infrastructure, cfg *config.Config) {
	if infra.RiverClient == nil {
		return
	}
	periodic := infra.RiverClient.PeriodicJobs()

	periodic.Add(river.NewPeriodicJob(
		river.PeriodicInterval(cfg.Engine.SweepInterval),
		func() (river.JobArgs, *river.InsertOpts) {
			return jobs.BattleSweepArgs{}, nil
		},
		&river.PeriodicJobOpts{RunOnStart: true},
	))

	periodic.Add(river.NewPeriodicJob(
		river.PeriodicInterval(cfg.Engine.AnomalyScanInterval),
		func() (river.JobArgs, *river.InsertOpts) {
			return jobs.AnomalyScanArgs{}, nil
		},
		&river.PeriodicJobOpts{RunOnStart: false},
	))

	periodic.Add(river.NewPeriodicJob(
		river.PeriodicInterval(time.Hour),
		func() (river.JobArgs, *river.InsertOpts) {
			return jobs.RateLimitGCArgs{}, nil
		},
		&river.PeriodicJobOpts{RunOnStart: false},
	))

	periodic.Add(river.NewPeriodicJob(
		river.PeriodicInterval(24*time.Hour),
		func() (river.JobArgs, *river.InsertOpts) {
			return jobs.NotificationCleanupArgs{}, nil
		},
		&river.PeriodicJobOpts{RunOnStart: true},
	))
}

package modules

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/internal/config"
	"versus-arena.io/arena/internal/governance/audit"
	"versus-arena.io/arena/internal/governance/monitor"
	"versus-arena.io/arena/internal/identity"
	"versus-arena.io/arena/internal/infrastructure"
	"versus-arena.io/arena/internal/pkg/worker"
	"versus-arena.io/arena/internal/settings"
)

// alertDedupWindow suppresses duplicate unresolved alerts for the same
// subject within this window.
const alertDedupWindow = time.Hour

// Infrastructure holds shared cross-cutting dependencies for all modules.
// It is a provider, not a Module.
type Infrastructure struct {
	Config      *config.Config
	DB          *infrastructure.DatabaseClients
	Pools       *worker.Pools
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	RiverClient *river.Client[pgx.Tx]
	Alerts      *monitor.Service
	AuditLogger *audit.Logger
	Settings    *settings.Store
	Oracle      *identity.EntOracle
}

// NewInfrastructure initializes DB/pools and the shared governance spine
// (alerting, audit log, versioned settings, identity oracle).
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	// Dev-mode: auto-create Ent tables + River queue tables.
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:    cfg.Worker.GeneralPoolSize,
		GovernancePoolSize: cfg.Worker.GovernancePoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	entClient := db.EntClient
	alerts := monitor.NewService(entClient, alertDedupWindow)

	return &Infrastructure{
		Config:      cfg,
		DB:          db,
		Pools:       pools,
		EntClient:   entClient,
		Pool:        db.Pool,
		RiverClient: db.RiverClient,
		Alerts:      alerts,
		AuditLogger: audit.NewLogger(entClient, alerts, pools),
		Settings:    settings.NewStore(entClient),
		Oracle:      identity.NewEntOracle(entClient),
	}, nil
}

// InitRiver initializes River client on top of a prepared worker registry.
func (i *Infrastructure) InitRiver(workers *river.Workers) error {
	if i == nil || i.DB == nil || i.Config == nil {
		return fmt.Errorf("infrastructure is not initialized")
	}
	if err := i.DB.InitRiverClient(workers, i.Config.River); err != nil {
		return fmt.Errorf("init river: %w", err)
	}
	i.RiverClient = i.DB.RiverClient
	return nil
}

// Close releases infra resources in reverse dependency order.
func (i *Infrastructure) Close() {
	if i == nil {
		return
	}
	if i.Pools != nil {
		i.Pools.Shutdown()
	}
	if i.DB != nil {
		i.DB.Close()
	}
}

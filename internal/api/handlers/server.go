// Package handlers implements the HTTP surface of the battle engine.
//
// Handlers stay thin: they bind and validate the request shape, delegate to
// the service layer, and push domain failures through the centralized error
// handler via c.Error(). All lifecycle rules live in the services.
package handlers

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/internal/api/middleware"
	"versus-arena.io/arena/internal/governance/audit"
	"versus-arena.io/arena/internal/governance/monitor"
	"versus-arena.io/arena/internal/moderation"
	"versus-arena.io/arena/internal/service"
	"versus-arena.io/arena/internal/settings"
)

// Server holds the handler dependencies for every route group.
type Server struct {
	client      *ent.Client
	pool        *pgxpool.Pool
	jwtCfg      middleware.JWTConfig
	audit       *audit.Logger
	battles     *service.BattleService
	votes       *service.VoteService
	comments    *service.CommentService
	moderation  *moderation.Engine
	alerts      *monitor.Service
	settings    *settings.Store
	riverClient *river.Client[pgx.Tx]
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	JWTCfg      middleware.JWTConfig
	Audit       *audit.Logger
	Battles     *service.BattleService
	Votes       *service.VoteService
	Comments    *service.CommentService
	Moderation  *moderation.Engine
	Alerts      *monitor.Service
	Settings    *settings.Store
	RiverClient *river.Client[pgx.Tx] // Needed for the admin-triggered anomaly scan
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:      deps.EntClient,
		pool:        deps.Pool,
		jwtCfg:      deps.JWTCfg,
		audit:       deps.Audit,
		battles:     deps.Battles,
		votes:       deps.Votes,
		comments:    deps.Comments,
		moderation:  deps.Moderation,
		alerts:      deps.Alerts,
		settings:    deps.Settings,
		riverClient: deps.RiverClient,
	}
}

// actorFromCtx extracts the authenticated user ID from the request context.
func actorFromCtx(c interface{ GetString(any) string }) string {
	if uid := c.GetString("user_id"); uid != "" {
		return uid
	}
	return "anonymous"
}

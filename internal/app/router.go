package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"versus-arena.io/arena/internal/api/handlers"
	"versus-arena.io/arena/internal/api/middleware"
	"versus-arena.io/arena/internal/config"
)

func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())

	if len(cfg.Server.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public routes.
	v1.POST("/auth/login", server.Login)
	v1.GET("/health/live", server.GetLiveness)
	v1.GET("/health/ready", server.GetReadiness)

	// Authenticated routes.
	auth := v1.Group("")
	auth.Use(middleware.JWTAuth([]byte(cfg.Security.JWTSigningKey)))
	{
		auth.GET("/auth/me", server.GetCurrentUser)
		auth.POST("/auth/change-password", server.ChangePassword)

		auth.POST("/battles", server.ProposeBattle)
		auth.GET("/battles", server.ListBattles)
		auth.GET("/battles/:battle_id", server.GetBattle)
		auth.POST("/battles/:battle_id/respond", server.RespondBattle)
		auth.POST("/battles/:battle_id/votes", server.CastVote)
		auth.GET("/battles/:battle_id/votes/count", server.CountVotes)
		auth.POST("/battles/:battle_id/comments", server.CreateComment)
		auth.GET("/battles/:battle_id/comments", server.ListComments)

		auth.PUT("/comments/:comment_id", server.EditComment)
		auth.POST("/comments/:comment_id/hide", server.HideComment)

		auth.GET("/notifications", server.ListNotifications)
		auth.GET("/notifications/unread-count", server.GetUnreadCount)
		auth.POST("/notifications/:notification_id/read", server.MarkNotificationRead)
		auth.POST("/notifications/read-all", server.MarkAllNotificationsRead)
	}

	// Admin routes. Services re-check the role against the database; this
	// group gate is the first line only.
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/battles/:battle_id/validate", server.ValidateBattle)
		admin.POST("/battles/:battle_id/cancel", server.CancelBattle)
		admin.POST("/battles/:battle_id/extend", server.ExtendBattle)
		admin.POST("/battles/:battle_id/finalize", server.FinalizeBattle)

		admin.GET("/audit-entries", server.ListAuditEntries)
		admin.GET("/alerts", server.ListAlerts)
		admin.POST("/alerts/:alert_id/resolve", server.ResolveAlert)
		admin.GET("/settings/:key", server.GetSetting)
		admin.PUT("/settings/:key", server.PutSetting)
		admin.GET("/moderation", server.ListModerationActions)
		admin.POST("/moderation/:action_id/override", server.OverrideModeration)
		admin.POST("/anomaly-scan", server.TriggerAnomalyScan)
	}

	return router
}

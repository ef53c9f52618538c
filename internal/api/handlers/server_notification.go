package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/notification"
	"versus-arena.io/arena/internal/api/middleware"
	"versus-arena.io/arena/internal/pkg/logger"
)

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "auth_required"})
		return
	}

	query := s.client.Notification.Query().
		Where(notification.RecipientIDEQ(userID))

	if c.Query("unread_only") == "true" {
		query = query.Where(notification.ReadEQ(false))
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	page, perPage = defaultPagination(page, perPage)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error"})
		return
	}

	notifications, err := query.
		Offset((page - 1) * perPage).
		Limit(perPage).
		Order(ent.Desc(notification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list notifications", zap.Error(err), zap.Int("page", page))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error"})
		return
	}

	items := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, notificationToAPI(n))
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"page":     page,
		"per_page": perPage,
		"total":    total,
	})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "auth_required"})
		return
	}

	count, err := s.client.Notification.Query().
		Where(
			notification.RecipientIDEQ(userID),
			notification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		logger.Error("failed to count unread notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /notifications/:notification_id/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "auth_required"})
		return
	}

	notificationID := c.Param("notification_id")
	n, err := s.client.Notification.Query().
		Where(
			notification.IDEQ(notificationID),
			notification.RecipientIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"code": "not_found", "message": "notification not found"})
			return
		}
		logger.Error("failed to get notification", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error"})
		return
	}

	if !n.Read {
		if err := s.client.Notification.UpdateOneID(notificationID).
			SetRead(true).
			Exec(ctx); err != nil {
			logger.Error("failed to mark notification read", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error"})
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "auth_required"})
		return
	}

	_, err := s.client.Notification.Update().
		Where(
			notification.RecipientIDEQ(userID),
			notification.ReadEQ(false),
		).
		SetRead(true).
		Save(ctx)
	if err != nil {
		logger.Error("failed to mark all notifications read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal_error"})
		return
	}

	c.Status(http.StatusNoContent)
}

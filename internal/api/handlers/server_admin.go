package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/auditentry"
	entmoderation "versus-arena.io/arena/ent/moderationaction"
	"versus-arena.io/arena/internal/governance/audit"
	"versus-arena.io/arena/internal/jobs"
	apperrors "versus-arena.io/arena/internal/pkg/errors"
)

// ListAlerts handles GET /admin/alerts. Returns open alerts, newest first.
func (s *Server) ListAlerts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	alerts, err := s.alerts.ListOpen(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, alertToAPI(a))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ResolveAlert handles POST /admin/alerts/:alert_id/resolve.
func (s *Server) ResolveAlert(c *gin.Context) {
	alertID := c.Param("alert_id")
	actor := actorFromCtx(c)

	a, err := s.alerts.Resolve(c.Request.Context(), alertID, actor)
	if err != nil {
		_ = c.Error(err)
		return
	}

	_ = s.audit.Log(c.Request.Context(), audit.Entry{
		Actor:       actor,
		Action:      audit.ActionAlertResolve,
		SubjectType: "alert",
		SubjectID:   alertID,
		Success:     true,
	})

	c.JSON(http.StatusOK, alertToAPI(a))
}

// ListAuditEntries handles GET /admin/audit-entries. Read-only compliance
// view, newest first, filterable by actor and action.
func (s *Server) ListAuditEntries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := s.client.AuditEntry.Query()
	if actor := c.Query("actor"); actor != "" {
		query = query.Where(auditentry.ActorEQ(actor))
	}
	if action := c.Query("action"); action != "" {
		query = query.Where(auditentry.ActionEQ(action))
	}
	if success := c.Query("success"); success != "" {
		query = query.Where(auditentry.SuccessEQ(success == "true"))
	}

	entries, err := query.
		Order(ent.Desc(auditentry.FieldCreatedAt)).
		Limit(limit).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, auditEntryToAPI(e))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetSetting handles GET /admin/settings/:key.
func (s *Server) GetSetting(c *gin.Context) {
	key := c.Param("key")
	doc, ok, err := s.settings.Get(c.Request.Context(), key)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"code": "not_found", "message": "no such setting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":     doc.Key,
		"version": doc.Version,
		"body":    doc.Body,
	})
}

type putSettingRequest struct {
	Body map[string]interface{} `json:"body" binding:"required"`
}

// PutSetting handles PUT /admin/settings/:key. Writes append a new version;
// earlier versions stay readable for audit purposes.
func (s *Server) PutSetting(c *gin.Context) {
	key := c.Param("key")
	actor := actorFromCtx(c)

	var req putSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_failed", "message": "body is required"})
		return
	}

	version, err := s.settings.Put(c.Request.Context(), key, req.Body, actor)
	_ = s.audit.Log(c.Request.Context(), audit.Entry{
		Actor:       actor,
		Action:      audit.ActionSettingsUpdate,
		SubjectType: "setting",
		SubjectID:   key,
		Detail:      map[string]interface{}{"version": version},
		Success:     err == nil,
		ErrorCode:   errCodeOrEmpty(err),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "version": version})
}

// ListModerationActions handles GET /admin/moderation. Supports filtering by
// status so admins can review the auto-execution queue.
func (s *Server) ListModerationActions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := s.client.ModerationAction.Query()
	if status := c.Query("status"); status != "" {
		query = query.Where(entmoderation.StatusEQ(entmoderation.Status(status)))
	}

	actions, err := query.
		Order(ent.Desc(entmoderation.FieldCreatedAt)).
		Limit(limit).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]ModerationActionDTO, 0, len(actions))
	for _, m := range actions {
		items = append(items, moderationActionToAPI(m))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type overrideModerationRequest struct {
	Decision string `json:"decision" binding:"required"`
	Note     string `json:"note"`
}

// OverrideModeration handles POST /admin/moderation/:action_id/override.
// Accepts "restore" or "hide"; the override is recorded as labeled feedback
// on the original automated decision.
func (s *Server) OverrideModeration(c *gin.Context) {
	actionID := c.Param("action_id")
	actor := actorFromCtx(c)

	var req overrideModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_failed", "message": "decision is required"})
		return
	}

	m, err := s.moderation.Override(c.Request.Context(), actionID, actor, req.Decision, req.Note)
	_ = s.audit.Log(c.Request.Context(), audit.Entry{
		Actor:       actor,
		Action:      audit.ActionOverride,
		SubjectType: "moderation_action",
		SubjectID:   actionID,
		Detail:      map[string]interface{}{"decision": req.Decision},
		Success:     err == nil,
		ErrorCode:   errCodeOrEmpty(err),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, moderationActionToAPI(m))
}

type anomalyScanRequest struct {
	LookbackMinutes int `json:"lookback_minutes"`
}

// TriggerAnomalyScan handles POST /admin/anomaly-scan. Enqueues an immediate
// scan instead of running it inline, so an expensive scan cannot stall the
// request path.
func (s *Server) TriggerAnomalyScan(c *gin.Context) {
	actor := actorFromCtx(c)

	var req anomalyScanRequest
	_ = c.ShouldBindJSON(&req)

	res, err := s.riverClient.Insert(c.Request.Context(), jobs.AnomalyScanArgs{
		LookbackMinutes: req.LookbackMinutes,
	}, nil)
	_ = s.audit.Log(c.Request.Context(), audit.Entry{
		Actor:       actor,
		Action:      audit.ActionAnomalyScanStart,
		SubjectType: "engine",
		SubjectID:   "anomaly-detector",
		Detail:      map[string]interface{}{"lookback_minutes": req.LookbackMinutes},
		Success:     err == nil,
		ErrorCode:   errCodeOrEmpty(err),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": res.Job.ID,
		"queued": !res.UniqueSkippedAsDuplicate,
	})
}

func errCodeOrEmpty(err error) string {
	if err == nil {
		return ""
	}
	return apperrors.CodeOf(err)
}

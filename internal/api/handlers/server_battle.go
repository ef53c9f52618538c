package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type proposeBattleRequest struct {
	OpponentID   string `json:"opponent_id" binding:"required"`
	SubmissionA  string `json:"submission_a" binding:"required"`
	SubmissionB  string `json:"submission_b"`
	DurationDays *int   `json:"duration_days"`
}

// ProposeBattle handles POST /battles.
func (s *Server) ProposeBattle(c *gin.Context) {
	var req proposeBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_failed", "message": "opponent_id and submission_a are required"})
		return
	}

	b, err := s.battles.Propose(c.Request.Context(), actorFromCtx(c), req.OpponentID, req.SubmissionA, req.SubmissionB, req.DurationDays)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, battleToAPI(b))
}

// ListBattles handles GET /battles.
func (s *Server) ListBattles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	page, perPage = defaultPagination(page, perPage)

	battles, err := s.battles.List(c.Request.Context(), c.Query("status"), perPage, (page-1)*perPage)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]BattleDTO, 0, len(battles))
	for _, b := range battles {
		items = append(items, battleToAPI(b))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"page":     page,
		"per_page": perPage,
	})
}

// GetBattle handles GET /battles/:battle_id.
func (s *Server) GetBattle(c *gin.Context) {
	b, err := s.battles.Get(c.Request.Context(), c.Param("battle_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, battleToAPI(b))
}

type respondBattleRequest struct {
	Accept bool   `json:"accept"`
	Reason string `json:"reason"`
}

// RespondBattle handles POST /battles/:battle_id/respond. Only the invited
// participant may call it, exactly once.
func (s *Server) RespondBattle(c *gin.Context) {
	var req respondBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_failed", "message": "invalid response body"})
		return
	}

	b, err := s.battles.Respond(c.Request.Context(), c.Param("battle_id"), actorFromCtx(c), req.Accept, req.Reason)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, battleToAPI(b))
}

// ValidateBattle handles POST /admin/battles/:battle_id/validate.
func (s *Server) ValidateBattle(c *gin.Context) {
	b, err := s.battles.AdminValidate(c.Request.Context(), c.Param("battle_id"), actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, battleToAPI(b))
}

type cancelBattleRequest struct {
	Reason string `json:"reason"`
}

// CancelBattle handles POST /admin/battles/:battle_id/cancel.
func (s *Server) CancelBattle(c *gin.Context) {
	var req cancelBattleRequest
	_ = c.ShouldBindJSON(&req)

	b, err := s.battles.AdminCancel(c.Request.Context(), c.Param("battle_id"), actorFromCtx(c), req.Reason)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, battleToAPI(b))
}

type extendBattleRequest struct {
	Days   int    `json:"days" binding:"required"`
	Reason string `json:"reason"`
}

// ExtendBattle handles POST /admin/battles/:battle_id/extend.
func (s *Server) ExtendBattle(c *gin.Context) {
	var req extendBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_failed", "message": "days is required"})
		return
	}

	b, err := s.battles.AdminExtendDuration(c.Request.Context(), c.Param("battle_id"), actorFromCtx(c), req.Days, req.Reason)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, battleToAPI(b))
}

// FinalizeBattle handles POST /admin/battles/:battle_id/finalize. Manual
// finalization for battles whose voting window has elapsed; the periodic
// sweep covers the normal path.
func (s *Server) FinalizeBattle(c *gin.Context) {
	b, err := s.battles.Finalize(c.Request.Context(), c.Param("battle_id"), actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, battleToAPI(b))
}

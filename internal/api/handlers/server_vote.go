package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type castVoteRequest struct {
	VoterID             string `json:"voter_id" binding:"required"`
	TargetParticipantID string `json:"target_participant_id" binding:"required"`
}

// CastVote handles POST /battles/:battle_id/votes. The request carries the
// claimed voter identity; it must match the authenticated caller.
func (s *Server) CastVote(c *gin.Context) {
	var req castVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_failed", "message": "voter_id and target_participant_id are required"})
		return
	}

	v, err := s.votes.CastVote(c.Request.Context(), actorFromCtx(c), c.Param("battle_id"), req.VoterID, req.TargetParticipantID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":                    v.ID,
		"battle_id":             v.BattleID,
		"voter_id":              v.VoterID,
		"target_participant_id": v.TargetParticipantID,
		"created_at":            v.CreatedAt,
	})
}

// CountVotes handles GET /battles/:battle_id/votes/count.
func (s *Server) CountVotes(c *gin.Context) {
	count, err := s.votes.CountFor(c.Request.Context(), c.Param("battle_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

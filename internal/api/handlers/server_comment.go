package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"versus-arena.io/arena/internal/api/middleware"
)

type createCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// CreateComment handles POST /battles/:battle_id/comments. The created
// comment passes through automated moderation before it is returned, so the
// response may already be hidden.
func (s *Server) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_failed", "message": "body is required"})
		return
	}

	cm, err := s.comments.Create(c.Request.Context(), actorFromCtx(c), c.Param("battle_id"), req.Body)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, commentToAPI(cm, true))
}

// ListComments handles GET /battles/:battle_id/comments. Hidden comments are
// included as tombstones without a body; administrators see everything.
func (s *Server) ListComments(c *gin.Context) {
	isAdmin := middleware.GetRole(c.Request.Context()) == middleware.AdminRole

	comments, err := s.comments.List(c.Request.Context(), c.Param("battle_id"), true)
	if err != nil {
		_ = c.Error(err)
		return
	}

	actor := actorFromCtx(c)
	items := make([]CommentDTO, 0, len(comments))
	for _, cm := range comments {
		reveal := isAdmin || cm.AuthorID == actor
		items = append(items, commentToAPI(cm, reveal))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type editCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// EditComment handles PUT /comments/:comment_id. Restricted to the author or
// an administrator in the service layer.
func (s *Server) EditComment(c *gin.Context) {
	var req editCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation_failed", "message": "body is required"})
		return
	}

	cm, err := s.comments.Edit(c.Request.Context(), actorFromCtx(c), c.Param("comment_id"), req.Body)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, commentToAPI(cm, true))
}

type hideCommentRequest struct {
	Reason string `json:"reason"`
}

// HideComment handles POST /comments/:comment_id/hide.
func (s *Server) HideComment(c *gin.Context) {
	var req hideCommentRequest
	_ = c.ShouldBindJSON(&req)

	cm, err := s.comments.Hide(c.Request.Context(), actorFromCtx(c), c.Param("comment_id"), req.Reason)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, commentToAPI(cm, true))
}

package http

import (
	"net/http"

	"travel-journal/pkg/logger"
	"travel-journal/pkg/middleware"
	"travel-journal/services/post/internal/entity"
	"travel-journal/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

// GetComments godoc
// @Summary      List comments
// @Description  Newest first, with author profiles
// @Tags         comments
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        type query string false "Comment type" Enums(want_to_go, been_there)
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) GetComments(c *gin.Context) {
	comments := h.commentUseCase.ListComments(c.Request.Context(), c.Param("id"), entity.CommentType(c.Query("type")))

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// AddComment godoc
// @Summary      Add comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        comment body entity.CommentInput true "Comment"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	var input entity.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILURE"})
		return
	}

	comment, err := h.commentUseCase.AddComment(c.Request.Context(), c.GetString("user_id"), c.Param("id"), input)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete comment
// @Description  Only the author may delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentUseCase.DeleteComment(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

// LikeComment godoc
// @Summary      Like comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]int
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id}/like [post]
func (h *CommentHandler) LikeComment(c *gin.Context) {
	likes, err := h.commentUseCase.LikeComment(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

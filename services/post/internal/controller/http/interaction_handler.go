package http

import (
	"net/http"

	"travel-journal/pkg/logger"
	"travel-journal/pkg/middleware"
	"travel-journal/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "session_id"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

// LikePost godoc
// @Summary      Toggle like
// @Description  Like the post, or remove the like if the caller already liked it
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *InteractionHandler) LikePost(c *gin.Context) {
	result, err := h.interactionUseCase.ToggleLike(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": result.Active, "likes": result.Count})
}

// SavePost godoc
// @Summary      Toggle save
// @Description  Save the post, or unsave it if the caller already saved it
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/save [post]
func (h *InteractionHandler) SavePost(c *gin.Context) {
	result, err := h.interactionUseCase.ToggleSave(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": result.Active, "saved_count": result.Count})
}

// GetSavedPosts godoc
// @Summary      List saved posts
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(10)
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /me/saved [get]
func (h *InteractionHandler) GetSavedPosts(c *gin.Context) {
	page, pageSize := pageParams(c)

	posts, count, err := h.interactionUseCase.ListSaved(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": count})
}

// TrackView godoc
// @Summary      Record a view
// @Description  Counts once per post and session. The session comes from the X-Session-ID header or the session_id cookie; a new one is issued when both are absent.
// @Tags         interactions
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/{id}/view [post]
func (h *InteractionHandler) TrackView(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		sessionID, _ = c.Cookie(sessionCookie)
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie(sessionCookie, sessionID, 24*3600, "/", "", false, true)
	}

	views := h.interactionUseCase.TrackView(c.Request.Context(), c.Param("id"), c.GetString("user_id"), sessionID)

	c.JSON(http.StatusOK, gin.H{"views": views, "session_id": sessionID})
}

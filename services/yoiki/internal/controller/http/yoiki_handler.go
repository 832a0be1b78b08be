package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"travel-journal/pkg/apperr"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/middleware"
	"travel-journal/pkg/models"
	"travel-journal/services/yoiki/internal/entity"
	"travel-journal/services/yoiki/internal/usecase"

	"github.com/gin-gonic/gin"
)

type YoikiHandler struct {
	yoikiUseCase usecase.YoikiUseCase
	logger       *logger.Logger
}

func NewYoikiHandler(yoikiUseCase usecase.YoikiUseCase, logger *logger.Logger) *YoikiHandler {
	return &YoikiHandler{
		yoikiUseCase: yoikiUseCase,
		logger:       logger,
	}
}

func listParam(c *gin.Context, name string) []string {
	var values []string
	for _, raw := range c.QueryArray(name) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

// timeParam accepts RFC 3339 timestamps or plain dates.
func timeParam(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperr.NewValidation("invalid " + name + ": " + raw)
	}
	return t, nil
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": apperr.ValidationFailure})
}

// GetFeed godoc
// @Summary      Get yoiki feed
// @Description  Curated posts filtered by city and yoiki category
// @Tags         yoiki
// @Produce      json
// @Param        cities query string false "Comma separated cities"
// @Param        categories query string false "Comma separated yoiki categories"
// @Param        sort query string false "latest|likes|saves|comments|reviews|anticipated"
// @Param        limit query int false "Number of posts (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /yoiki/posts [get]
func (h *YoikiHandler) GetFeed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	posts := h.yoikiUseCase.Feed(c.Request.Context(), entity.FeedFilter{
		Cities:     listParam(c, "cities"),
		Categories: listParam(c, "categories"),
		Sort:       models.PostSort(c.Query("sort")),
		Limit:      limit,
	})
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// ListAnnouncements godoc
// @Summary      List announcements
// @Description  Pinned first, then newest first
// @Tags         yoiki
// @Produce      json
// @Param        page query int false "Page (1-based)"
// @Param        page_size query int false "Page size (max 100)"
// @Success      200  {object}  entity.AnnouncementPage
// @Router       /yoiki/announcements [get]
func (h *YoikiHandler) ListAnnouncements(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	c.JSON(http.StatusOK, h.yoikiUseCase.ListAnnouncements(c.Request.Context(), page, pageSize))
}

// CreateAnnouncement godoc
// @Summary      Create announcement
// @Tags         yoiki
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.AnnouncementInput true "Announcement"
// @Success      201  {object}  entity.Announcement
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /yoiki/announcements [post]
func (h *YoikiHandler) CreateAnnouncement(c *gin.Context) {
	var input entity.AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	announcement, err := h.yoikiUseCase.CreateAnnouncement(c.Request.Context(), c.GetString("user_id"), input)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, announcement)
}

// UpdateAnnouncement godoc
// @Summary      Update announcement
// @Tags         yoiki
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Announcement ID"
// @Param        request body entity.AnnouncementInput true "Announcement"
// @Success      200  {object}  entity.Announcement
// @Failure      404  {object}  map[string]string
// @Router       /yoiki/announcements/{id} [put]
func (h *YoikiHandler) UpdateAnnouncement(c *gin.Context) {
	var input entity.AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	announcement, err := h.yoikiUseCase.UpdateAnnouncement(c.Request.Context(), c.GetString("user_id"), c.Param("id"), input)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcement)
}

// DeleteAnnouncement godoc
// @Summary      Delete announcement
// @Tags         yoiki
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Announcement ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /yoiki/announcements/{id} [delete]
func (h *YoikiHandler) DeleteAnnouncement(c *gin.Context) {
	if err := h.yoikiUseCase.DeleteAnnouncement(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}

// ListSchedule godoc
// @Summary      List schedule
// @Description  Events inside [start, end]; defaults to the current month
// @Tags         yoiki
// @Produce      json
// @Param        start query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Param        end query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /yoiki/schedule [get]
func (h *YoikiHandler) ListSchedule(c *gin.Context) {
	start, err := timeParam(c, "start")
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	end, err := timeParam(c, "end")
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	events, err := h.yoikiUseCase.ListSchedule(c.Request.Context(), start, end)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateEvent godoc
// @Summary      Create schedule event
// @Tags         yoiki
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.ScheduleInput true "Event"
// @Success      201  {object}  entity.ScheduleEvent
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /yoiki/schedule [post]
func (h *YoikiHandler) CreateEvent(c *gin.Context) {
	var input entity.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	event, err := h.yoikiUseCase.CreateEvent(c.Request.Context(), c.GetString("user_id"), input)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary      Update schedule event
// @Tags         yoiki
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Param        request body entity.ScheduleInput true "Event"
// @Success      200  {object}  entity.ScheduleEvent
// @Failure      404  {object}  map[string]string
// @Router       /yoiki/schedule/{id} [put]
func (h *YoikiHandler) UpdateEvent(c *gin.Context) {
	var input entity.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	event, err := h.yoikiUseCase.UpdateEvent(c.Request.Context(), c.GetString("user_id"), c.Param("id"), input)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary      Delete schedule event
// @Tags         yoiki
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /yoiki/schedule/{id} [delete]
func (h *YoikiHandler) DeleteEvent(c *gin.Context) {
	if err := h.yoikiUseCase.DeleteEvent(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		middleware.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

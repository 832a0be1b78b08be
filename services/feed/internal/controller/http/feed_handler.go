package http

import (
	"net/http"
	"strconv"
	"strings"

	"travel-journal/pkg/logger"
	"travel-journal/pkg/models"
	"travel-journal/services/feed/internal/entity"
	"travel-journal/services/feed/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase usecase.FeedUseCase
	logger      *logger.Logger
}

func NewFeedHandler(feedUseCase usecase.FeedUseCase, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
		logger:      logger,
	}
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return page, pageSize
}

// listParam accepts both repeated and comma separated values.
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

// GetHome godoc
// @Summary      Get home rankings
// @Description  Hall of fame travel courses and this week's top community posts
// @Tags         feed
// @Produce      json
// @Success      200  {object}  entity.Home
// @Router       /feed/home [get]
func (h *FeedHandler) GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, h.feedUseCase.Home(c.Request.Context()))
}

// GetHallOfFame godoc
// @Summary      Get hall of fame
// @Description  Top 5 travel course posts by best score among the 20 most liked
// @Tags         feed
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /feed/hall-of-fame [get]
func (h *FeedHandler) GetHallOfFame(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": h.feedUseCase.HallOfFame(c.Request.Context())})
}

// GetWeeklyBest godoc
// @Summary      Get weekly best
// @Description  Posts of the past 7 days ranked by best score. Without exclude, hall of fame posts are excluded.
// @Tags         feed
// @Produce      json
// @Param        exclude query string false "Comma separated post ids to exclude"
// @Success      200  {object}  map[string]interface{}
// @Router       /feed/weekly-best [get]
func (h *FeedHandler) GetWeeklyBest(c *gin.Context) {
	ctx := c.Request.Context()

	var exclude []string
	if _, ok := c.GetQuery("exclude"); ok {
		exclude = listParam(c, "exclude")
	} else {
		for _, p := range h.feedUseCase.HallOfFame(ctx) {
			exclude = append(exclude, p.ID)
		}
	}

	c.JSON(http.StatusOK, gin.H{"posts": h.feedUseCase.WeeklyBest(ctx, exclude)})
}

// GetTopCommunity godoc
// @Summary      Get top community posts
// @Description  Top 5 community posts of the past 7 days by best score
// @Tags         feed
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /feed/top-community [get]
func (h *FeedHandler) GetTopCommunity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": h.feedUseCase.TopCommunity(c.Request.Context())})
}

// ListTravelCourses godoc
// @Summary      Browse travel course posts
// @Tags         feed
// @Produce      json
// @Param        cities query string false "Comma separated cities"
// @Param        transportation query string false "Comma separated transport types"
// @Param        sort query string false "latest|likes|saves|reviews|anticipated"
// @Param        page query int false "Page (1-based)"
// @Param        page_size query int false "Page size (max 100)"
// @Success      200  {object}  entity.PostPage
// @Router       /feed/travel-courses [get]
func (h *FeedHandler) ListTravelCourses(c *gin.Context) {
	page, pageSize := pageParams(c)
	result := h.feedUseCase.ListTravelCourses(c.Request.Context(), entity.BrowseFilter{
		Cities:         listParam(c, "cities"),
		Transportation: listParam(c, "transportation"),
		Sort:           models.PostSort(c.Query("sort")),
		Page:           page,
		PageSize:       pageSize,
	})
	c.JSON(http.StatusOK, result)
}

// ListCommunity godoc
// @Summary      Browse community posts
// @Tags         feed
// @Produce      json
// @Param        sort query string false "latest|likes|saves|comments|reviews|anticipated"
// @Param        page query int false "Page (1-based)"
// @Param        page_size query int false "Page size (max 100)"
// @Success      200  {object}  entity.PostPage
// @Router       /feed/community [get]
func (h *FeedHandler) ListCommunity(c *gin.Context) {
	page, pageSize := pageParams(c)
	result := h.feedUseCase.ListCommunity(c.Request.Context(), page, pageSize, models.PostSort(c.Query("sort")))
	c.JSON(http.StatusOK, result)
}

// Search godoc
// @Summary      Search posts
// @Description  Case-insensitive match on title and content. A blank query returns nothing.
// @Tags         feed
// @Produce      json
// @Param        q query string true "Search text"
// @Param        category query string false "Travel Courses|Community"
// @Param        page query int false "Page (1-based)"
// @Param        page_size query int false "Page size (max 100)"
// @Success      200  {object}  entity.PostPage
// @Router       /search [get]
func (h *FeedHandler) Search(c *gin.Context) {
	page, pageSize := pageParams(c)
	category := models.PostCategory(c.Query("category"))
	result := h.feedUseCase.Search(c.Request.Context(), c.Query("q"), category, page, pageSize)
	c.JSON(http.StatusOK, result)
}

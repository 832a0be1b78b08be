package http

import (
	"net/http"
	"strconv"

	"travel-journal/pkg/directions"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/middleware"
	"travel-journal/services/course/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	routeUseCase usecase.RouteUseCase
	logger       *logger.Logger
}

func NewRouteHandler(routeUseCase usecase.RouteUseCase, logger *logger.Logger) *RouteHandler {
	return &RouteHandler{
		routeUseCase: routeUseCase,
		logger:       logger,
	}
}

type RouteRequest struct {
	Points []directions.Point `json:"points" binding:"required"`
}

// ComputeRoute godoc
// @Summary      Compute a route polyline
// @Description  First point is the origin, last the destination, the rest are visited in order.
// @Tags         routes
// @Accept       json
// @Produce      json
// @Param        route body RouteRequest true "Ordered points"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /routes [post]
func (h *RouteHandler) ComputeRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILURE"})
		return
	}

	path, err := h.routeUseCase.Route(c.Request.Context(), req.Points)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"path": path})
}

// GetDayRoute godoc
// @Summary      Route of one day of a course
// @Tags         routes
// @Produce      json
// @Param        id path string true "Course ID"
// @Param        day path int true "Day (1-based)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id}/days/{day}/route [get]
func (h *RouteHandler) GetDayRoute(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day", "code": "VALIDATION_FAILURE"})
		return
	}

	path, err := h.routeUseCase.DayRoute(c.Request.Context(), c.Param("id"), day)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"day": day, "path": path})
}

// Directions godoc
// @Summary      Directions provider proxy
// @Description  Forwards a waypoint directions request; priority defaults to DISTANCE and avoid to ferries and uturn.
// @Tags         routes
// @Accept       json
// @Produce      json
// @Param        request body directions.Request true "Directions request"
// @Success      200  {object}  directions.Response
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /directions [post]
func (h *RouteHandler) Directions(c *gin.Context) {
	var req directions.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILURE"})
		return
	}

	body, err := h.routeUseCase.Directions(c.Request.Context(), req)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// SearchPlaces godoc
// @Summary      Keyword place search
// @Tags         places
// @Produce      json
// @Param        query query string true "Keyword"
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /places/search [get]
func (h *RouteHandler) SearchPlaces(c *gin.Context) {
	result, err := h.routeUseCase.SearchPlaces(c.Request.Context(), c.Query("query"))
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": result})
}

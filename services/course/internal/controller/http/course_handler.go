package http

import (
	"net/http"
	"strconv"

	"travel-journal/pkg/logger"
	"travel-journal/pkg/middleware"
	"travel-journal/services/course/internal/entity"
	"travel-journal/services/course/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUseCase usecase.CourseUseCase
	logger        *logger.Logger
}

func NewCourseHandler(courseUseCase usecase.CourseUseCase, logger *logger.Logger) *CourseHandler {
	return &CourseHandler{
		courseUseCase: courseUseCase,
		logger:        logger,
	}
}

// CreateCourse godoc
// @Summary      Create a travel course
// @Description  Create a course with its days. Places without a name or coordinates are dropped; empty days keep their index free.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        course body entity.CourseInput true "Course"
// @Success      201  {object}  entity.TravelCourse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	userID := c.GetString("user_id")

	var input entity.CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILURE"})
		return
	}

	course, err := h.courseUseCase.CreateCourse(c.Request.Context(), userID, input)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "courseId": course.ID, "course": course})
}

// UpdateCourse godoc
// @Summary      Update a travel course
// @Description  Replace the course fields and days. Only the owner may update.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Param        course body entity.CourseInput true "Course"
// @Success      200  {object}  entity.TravelCourse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	userID := c.GetString("user_id")
	courseID := c.Param("id")

	var input entity.CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILURE"})
		return
	}

	course, err := h.courseUseCase.UpdateCourse(c.Request.Context(), userID, courseID, input)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "courseId": course.ID, "course": course})
}

// DeleteCourse godoc
// @Summary      Delete a travel course
// @Description  Delete a course and its days. Deleting a course you do not own has no effect.
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	userID := c.GetString("user_id")
	courseID := c.Param("id")

	if err := h.courseUseCase.DeleteCourse(c.Request.Context(), userID, courseID); err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

// GetCourse godoc
// @Summary      Get a travel course
// @Description  Get a course with one row per day, the most recent write winning.
// @Tags         courses
// @Produce      json
// @Param        id path string true "Course ID"
// @Success      200  {object}  entity.TravelCourse
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.courseUseCase.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// ListMyCourses godoc
// @Summary      List my travel courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(10)
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /courses/mine [get]
func (h *CourseHandler) ListMyCourses(c *gin.Context) {
	userID := c.GetString("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	courses, hasMore, err := h.courseUseCase.ListMyCourses(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses, "has_more": hasMore})
}

// GetTransportation godoc
// @Summary      Transport modes used by a course
// @Tags         courses
// @Produce      json
// @Param        id path string true "Course ID"
// @Success      200  {object}  map[string][]string
// @Router       /courses/{id}/transportation [get]
func (h *CourseHandler) GetTransportation(c *gin.Context) {
	types := h.courseUseCase.TransportationTypes(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"transportation": types})
}

// GetRegions godoc
// @Summary      Regions of a course
// @Tags         courses
// @Produce      json
// @Param        id path string true "Course ID"
// @Success      200  {object}  map[string][]string
// @Router       /courses/{id}/regions [get]
func (h *CourseHandler) GetRegions(c *gin.Context) {
	regions := h.courseUseCase.Regions(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"regions": regions})
}

package http

import (
	"net/http"
	"strconv"
	"strings"

	"travel-journal/pkg/logger"
	"travel-journal/pkg/middleware"
	"travel-journal/services/post/internal/entity"
	"travel-journal/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return page, pageSize
}

// bindPost reads the post fields and, for multipart requests, the optional
// "image" file. The returned closer must be called once the upload is done.
func bindPost(c *gin.Context) (entity.PostInput, *usecase.ImageUpload, func(), error) {
	var input entity.PostInput
	if err := c.ShouldBind(&input); err != nil {
		return input, nil, func() {}, err
	}

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return input, nil, func() {}, nil
	}
	file, err := c.FormFile("image")
	if err != nil {
		return input, nil, func() {}, nil
	}
	src, err := file.Open()
	if err != nil {
		return input, nil, func() {}, err
	}

	image := &usecase.ImageUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Body:        src,
	}
	return input, image, func() { src.Close() }, nil
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a Travel Courses or Community post. A multipart request may carry a cover image in the "image" field.
// @Tags         posts
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        post body entity.PostInput true "Post"
// @Param        image formData file false "Cover image"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	input, image, done, err := bindPost(c)
	defer done()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILURE"})
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), userID, input, image)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Get a post with the caller's like and save flags
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.PostDetail
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	detail, err := h.postUseCase.GetPost(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdatePost godoc
// @Summary      Update post
// @Description  Replace the editable fields of a post. Only the author may update.
// @Tags         posts
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        post body entity.PostInput true "Post"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	input, image, done, err := bindPost(c)
	defer done()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILURE"})
		return
	}

	post, err := h.postUseCase.UpdatePost(c.Request.Context(), userID, c.Param("id"), input, image)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete post
// @Description  Delete a post with its likes, saves, comments and views
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUseCase.DeletePost(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

type AttachCourseRequest struct {
	CourseID string `json:"course_id" binding:"required"`
}

// AttachCourse godoc
// @Summary      Attach a travel course
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body AttachCourseRequest true "Course"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/course [put]
func (h *PostHandler) AttachCourse(c *gin.Context) {
	var req AttachCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILURE"})
		return
	}

	post, err := h.postUseCase.AttachCourse(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.CourseID)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetUserPosts godoc
// @Summary      List a user's posts
// @Tags         posts
// @Produce      json
// @Param        user_id path string true "User ID"
// @Param        category query string false "Category" Enums(Travel Courses, Community)
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(10)
// @Success      200  {object}  map[string]interface{}
// @Router       /users/{user_id}/posts [get]
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	page, pageSize := pageParams(c)

	posts, err := h.postUseCase.ListByUser(c.Request.Context(), c.Param("user_id"), entity.Category(c.Query("category")), page, pageSize)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetMyCoursePosts godoc
// @Summary      List the caller's Travel Courses posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(10)
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /me/courses [get]
func (h *PostHandler) GetMyCoursePosts(c *gin.Context) {
	page, pageSize := pageParams(c)

	posts, err := h.postUseCase.ListMyCourses(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetRelated godoc
// @Summary      Related posts
// @Description  Posts of the same category ranked by shared tags and regions, engagement and freshness
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        limit query int false "Limit" default(4)
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/{id}/related [get]
func (h *PostHandler) GetRelated(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))

	c.JSON(http.StatusOK, gin.H{"posts": h.postUseCase.Related(c.Request.Context(), c.Param("id"), limit)})
}

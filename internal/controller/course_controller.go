package controller

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/internal/service"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
	Storage       service.StorageProvider
}

func NewCourseController(courseService *service.CourseService, storage service.StorageProvider) *CourseController {
	return &CourseController{CourseService: courseService, Storage: storage}
}

// @Summary List catalog courses
// @Description Filterable by category, difficulty, provider and free-text search.
// @Tags courses
// @Produce json
// @Param category query string false "category tag"
// @Param difficulty query string false "beginner|intermediate|advanced"
// @Param provider query string false "coursera|udemy"
// @Param search query string false "matches title, description, instructor"
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	var query service.CourseQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	courses, err := c.CourseService.ListCourses(query)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary Course detail
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.CourseService.GetCourse(ctx.Param("id"))
	if errors.Is(err, util.ErrCourseNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary Upload a course thumbnail
// @Tags courses
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/courses/{id}/thumbnail [post]
func (c *CourseController) UploadThumbnail(ctx *gin.Context) {
	id := ctx.Param("id")

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file field")
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("thumbnails/%s%s", model.GenerateUUID(), filepath.Ext(header.Filename))
	url, err := c.Storage.Upload(ctx.Request.Context(), filename, file,
		header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	course, err := c.CourseService.SetThumbnail(id, url)
	if errors.Is(err, util.ErrCourseNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

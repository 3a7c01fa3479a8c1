package controller

import (
	"errors"

	"github.com/Lucifer-0905/ignitiaLearn/internal/service"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary All course progress for the current user
// @Tags progress
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) ListProgress(ctx *gin.Context) {
	records, err := c.ProgressService.ListProgress(currentUserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// @Summary Progress on one course
// @Tags progress
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/{courseId} [get]
func (c *ProgressController) GetCourseProgress(ctx *gin.Context) {
	record, err := c.ProgressService.GetCourseProgress(currentUserID(ctx), ctx.Param("courseId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

// @Summary Update progress on a course
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/{courseId} [post]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	var update service.ProgressUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.ProgressService.UpdateProgress(ctx.Request.Context(),
		currentUserID(ctx), ctx.Param("courseId"), update)
	if errors.Is(err, util.ErrCourseNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

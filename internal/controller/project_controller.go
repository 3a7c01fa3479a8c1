package controller

import (
	"errors"

	"github.com/Lucifer-0905/ignitiaLearn/internal/service"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	ProjectService *service.ProjectService
}

func NewProjectController(projectService *service.ProjectService) *ProjectController {
	return &ProjectController{ProjectService: projectService}
}

// @Summary List practice projects
// @Tags projects
// @Produce json
// @Param difficulty query string false "beginner|intermediate|advanced"
// @Success 200 {object} util.Response
// @Router /api/projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	projects, err := c.ProjectService.ListProjects(ctx.Query("difficulty"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, projects)
}

// @Summary Project detail
// @Tags projects
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/projects/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	project, err := c.ProjectService.GetProject(ctx.Param("id"))
	if errors.Is(err, util.ErrProjectNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, project)
}

package controller

import (
	"github.com/Lucifer-0905/ignitiaLearn/internal/service"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"github.com/gin-gonic/gin"
)

type PreferencesController struct {
	PreferencesService *service.PreferencesService
}

func NewPreferencesController(preferencesService *service.PreferencesService) *PreferencesController {
	return &PreferencesController{PreferencesService: preferencesService}
}

// @Summary Stored learning preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/preferences [get]
func (c *PreferencesController) GetPreferences(ctx *gin.Context) {
	prefs, err := c.PreferencesService.GetPreferences(currentUserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}

// @Summary Save learning preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/preferences [post]
func (c *PreferencesController) SavePreferences(ctx *gin.Context) {
	var input service.PreferencesInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prefs, err := c.PreferencesService.SavePreferences(currentUserID(ctx), input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}

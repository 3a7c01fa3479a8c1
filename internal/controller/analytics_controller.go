package controller

import (
	"github.com/Lucifer-0905/ignitiaLearn/internal/service"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary Learning analytics snapshot
// @Description Weekly activity always covers Monday through Sunday.
// @Tags analytics
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/analytics [get]
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	snapshot, err := c.AnalyticsService.GetAnalytics(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, snapshot)
}

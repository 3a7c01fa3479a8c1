package controller

import (
	"github.com/Lucifer-0905/ignitiaLearn/internal/service"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"github.com/gin-gonic/gin"
)

type AIController struct {
	Recommender *service.RecommendationService
}

func NewAIController(recommender *service.RecommendationService) *AIController {
	return &AIController{Recommender: recommender}
}

// @Summary Recommend a personalized learning path
// @Description Always answers with a complete recommendation; when the
// @Description generative backend is unavailable a deterministic path
// @Description is substituted.
// @Tags ai
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/ai/recommend-path [post]
func (c *AIController) RecommendPath(ctx *gin.Context) {
	var input struct {
		Skills       []string `json:"skills"`
		CurrentLevel string   `json:"currentLevel"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rec, err := c.Recommender.RecommendPath(ctx.Request.Context(), input.Skills, input.CurrentLevel)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rec)
}

// @Summary Generate a practice project idea
// @Tags ai
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/ai/generate-project [post]
func (c *AIController) GenerateProject(ctx *gin.Context) {
	var input service.ProjectRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	idea, err := c.Recommender.GenerateProject(ctx.Request.Context(), input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, idea)
}

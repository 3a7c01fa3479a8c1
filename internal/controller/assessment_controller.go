package controller

import (
	"errors"
	"net/http"

	"github.com/Lucifer-0905/ignitiaLearn/internal/service"
	"github.com/Lucifer-0905/ignitiaLearn/internal/util"
	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// sessionError maps quiz state machine errors onto HTTP statuses.
func sessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrRequestInFlight):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrNoQuestions),
		errors.Is(err, util.ErrSessionCorrupted):
		util.Error(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, util.ErrNoSelection),
		errors.Is(err, util.ErrAlreadySubmitted),
		errors.Is(err, util.ErrNotSubmitted),
		errors.Is(err, util.ErrSessionFinished),
		errors.Is(err, util.ErrSessionNotFinished),
		errors.Is(err, util.ErrSessionNotStarted),
		errors.Is(err, util.ErrInvalidOption):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary Assessment question bank
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment [get]
func (c *AssessmentController) GetQuestions(ctx *gin.Context) {
	questions, err := c.AssessmentService.GetQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Persist a finished assessment result
// @Tags assessment
// @Accept json
// @Produce json
// @Success 201 {object} util.Response
// @Router /api/assessment/results [post]
func (c *AssessmentController) SaveResult(ctx *gin.Context) {
	var input service.SaveResultInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AssessmentService.SaveResult(currentUserID(ctx), input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// @Summary Past assessment results
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/results [get]
func (c *AssessmentController) GetResults(ctx *gin.Context) {
	results, err := c.AssessmentService.GetResults(currentUserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// @Summary Start a quiz session
// @Tags assessment
// @Produce json
// @Success 201 {object} util.Response
// @Router /api/assessment/sessions [post]
func (c *AssessmentController) CreateSession(ctx *gin.Context) {
	view, err := c.AssessmentService.CreateSession()
	if err != nil {
		sessionError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// @Summary Quiz session snapshot
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/sessions/{id} [get]
func (c *AssessmentController) GetSession(ctx *gin.Context) {
	view, err := c.AssessmentService.GetSession(ctx.Param("id"))
	if err != nil {
		sessionError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Select an option for the current question
// @Tags assessment
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/sessions/{id}/select [post]
func (c *AssessmentController) SelectAnswer(ctx *gin.Context) {
	var input struct {
		AnswerIndex *int `json:"answerIndex" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.AssessmentService.SelectAnswer(ctx.Param("id"), *input.AnswerIndex)
	if err != nil {
		sessionError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Submit the selected answer
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/sessions/{id}/submit [post]
func (c *AssessmentController) SubmitAnswer(ctx *gin.Context) {
	view, err := c.AssessmentService.SubmitAnswer(ctx.Param("id"))
	if err != nil {
		sessionError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Advance to the next question
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/sessions/{id}/advance [post]
func (c *AssessmentController) AdvanceSession(ctx *gin.Context) {
	view, err := c.AssessmentService.AdvanceSession(ctx.Param("id"))
	if err != nil {
		sessionError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Scored session result
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/sessions/{id}/result [get]
func (c *AssessmentController) SessionResult(ctx *gin.Context) {
	result, err := c.AssessmentService.SessionResult(ctx.Param("id"))
	if err != nil {
		sessionError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Generate a path recommendation for a scored session
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/sessions/{id}/recommendation [post]
func (c *AssessmentController) SessionRecommendation(ctx *gin.Context) {
	rec, err := c.AssessmentService.RequestRecommendation(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		sessionError(ctx, err)
		return
	}
	util.Success(ctx, rec)
}

// @Summary Discard a quiz session
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/sessions/{id} [delete]
func (c *AssessmentController) DeleteSession(ctx *gin.Context) {
	if err := c.AssessmentService.DeleteSession(ctx.Param("id")); err != nil {
		sessionError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

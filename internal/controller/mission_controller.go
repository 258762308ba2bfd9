package controller

import (
	"errors"

	"space_academy_backend/internal/service"
	"space_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MissionController struct {
	MissionService *service.MissionService
}

func NewMissionController(missionService *service.MissionService) *MissionController {
	return &MissionController{MissionService: missionService}
}

// ListMissions godoc
// @Summary List curated missions
// @Tags missions
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.MissionView}
// @Router /api/missions [get]
func (c *MissionController) ListMissions(ctx *gin.Context) {
	missions, err := c.MissionService.ListMissions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, missions)
}

// GetMissionQuiz godoc
// @Summary Quiz for one mission
// @Description Builds the three-question mission quiz; answers stay server-side
// @Tags missions
// @Produce  json
// @Param   id path string true "Mission ID"
// @Success 200 {object} util.Response{data=[]service.QuizQuestionView}
// @Failure 404 {object} util.Response "Unknown mission"
// @Security BearerAuth
// @Router /api/missions/{id}/quiz [get]
func (c *MissionController) GetMissionQuiz(ctx *gin.Context) {
	questions, err := c.MissionService.MissionQuiz(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrMissionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, questions)
}

// SubmitMissionQuizRequest carries the mission quiz answers
// swagger:model SubmitMissionQuizRequest
type SubmitMissionQuizRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// SubmitMissionQuiz godoc
// @Summary Submit a mission quiz
// @Description Grades against a key re-derived from the mission registry
// @Tags missions
// @Accept  json
// @Produce  json
// @Param   id path string true "Mission ID"
// @Param   body body SubmitMissionQuizRequest true "Answers keyed by question ID"
// @Success 200 {object} util.Response{data=service.QuizOutcome}
// @Failure 404 {object} util.Response "Unknown mission"
// @Security BearerAuth
// @Router /api/missions/{id}/quiz [post]
func (c *MissionController) SubmitMissionQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitMissionQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.MissionService.SubmitMissionQuiz(claims.UserID, ctx.Param("id"), req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrMissionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, outcome)
}

// SubmitPhotoQuestion godoc
// @Summary Submit the rover-photo question
// @Description Single-shot question built from live rover data; the correct answer rides with the payload
// @Tags missions
// @Accept  json
// @Produce  json
// @Param   body body service.PhotoSubmission true "Answer and expected answer"
// @Success 200 {object} util.Response{data=service.QuizOutcome}
// @Failure 400 {object} util.Response "Invalid payload"
// @Security BearerAuth
// @Router /api/missions/photo [post]
func (c *MissionController) SubmitPhotoQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PhotoSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.MissionService.SubmitPhotoQuestion(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, outcome)
}

// SubmitNeoQuestionsRequest carries the near-Earth-object question pair
// swagger:model SubmitNeoQuestionsRequest
type SubmitNeoQuestionsRequest struct {
	Questions []service.NeoQuestion `json:"questions" binding:"required,min=1,dive"`
}

// SubmitNeoQuestions godoc
// @Summary Submit the near-Earth-object questions
// @Tags missions
// @Accept  json
// @Produce  json
// @Param   body body SubmitNeoQuestionsRequest true "Question pair with expected answers"
// @Success 200 {object} util.Response{data=service.QuizOutcome}
// @Failure 400 {object} util.Response "Invalid payload"
// @Security BearerAuth
// @Router /api/missions/neo [post]
func (c *MissionController) SubmitNeoQuestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitNeoQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.MissionService.SubmitNeoQuestions(claims.UserID, req.Questions)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, outcome)
}

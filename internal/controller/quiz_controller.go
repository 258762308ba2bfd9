package controller

import (
	"space_academy_backend/internal/service"
	"space_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// StartQuiz godoc
// @Summary Start the daily quiz
// @Description Issues a fresh question set; re-issuing replaces any ungraded attempt
// @Tags quiz
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.QuizQuestionView}
// @Failure 401 {object} util.Response "Unauthorized"
// @Security BearerAuth
// @Router /api/quiz [get]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.QuizService.StartDailyQuiz(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// SubmitQuizRequest maps question IDs to the user's answers
// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary Submit the daily quiz
// @Description Grades the in-flight attempt exactly once; a replayed submission scores zero questions
// @Tags quiz
// @Accept  json
// @Produce  json
// @Param   body body SubmitQuizRequest true "Answers keyed by question ID"
// @Success 200 {object} util.Response{data=service.QuizOutcome}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 401 {object} util.Response "Unauthorized"
// @Security BearerAuth
// @Router /api/submit-quiz [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.QuizService.SubmitDailyQuiz(claims.UserID, req.Answers)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, outcome)
}

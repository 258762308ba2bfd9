package controller

import (
	"space_academy_backend/internal/service"
	"space_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// GetAchievements godoc
// @Summary My achievements
// @Description Returns total XP, level, next-level XP, earned badges and the leaderboard
// @Tags achievements
// @Produce  json
// @Success 200 {object} util.Response{data=service.UserAchievements}
// @Failure 401 {object} util.Response "Unauthorized"
// @Security BearerAuth
// @Router /api/achievements [get]
func (c *AchievementController) GetAchievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	achievements, err := c.AchievementService.GetUserAchievements(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// GetProgressHistory godoc
// @Summary My activity history
// @Description Recent quiz results and mission completions
// @Tags achievements
// @Produce  json
// @Success 200 {object} util.Response{data=service.ProgressHistory}
// @Failure 401 {object} util.Response "Unauthorized"
// @Security BearerAuth
// @Router /api/history [get]
func (c *AchievementController) GetProgressHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	history, err := c.AchievementService.GetProgressHistory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

// GetLeaderboard godoc
// @Summary Top cadets by XP
// @Tags achievements
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/leaderboard [get]
func (c *AchievementController) GetLeaderboard(ctx *gin.Context) {
	leaderboard, err := c.AchievementService.GetLeaderboard(10)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, leaderboard)
}

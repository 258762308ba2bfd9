package app

import (
	"space_academy_backend/docs"
	"space_academy_backend/internal/config"
	"space_academy_backend/internal/middleware"
	"space_academy_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes: no login required
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.GET("/planets", c.content.GetPlanets)
		public.GET("/planets/:name", c.content.GetPlanet)
		public.GET("/knowledge/daily", c.content.GetDailyKnowledge)
		public.GET("/missions", c.mission.ListMissions)
		public.GET("/leaderboard", c.achievement.GetLeaderboard)

		public.GET("/space/apod", c.spaceData.GetPictureOfTheDay)
		public.GET("/space/neo", c.spaceData.GetNearEarthObjects)
		public.GET("/space/rover-photos", c.spaceData.GetRoverPhotos)

		public.POST("/chat", c.chat.Ask)
	}

	// Authenticated routes: everything that reads or writes per-user state
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/me", c.auth.Me)
		authGroup.GET("/profile", c.user.GetProfile)
		authGroup.PUT("/profile", c.user.UpdateProfile)
		authGroup.POST("/profile/avatar", c.user.UploadAvatar)

		authGroup.GET("/quiz", c.quiz.StartQuiz)
		authGroup.POST("/submit-quiz", c.quiz.SubmitQuiz)

		authGroup.GET("/missions/:id/quiz", c.mission.GetMissionQuiz)
		authGroup.POST("/missions/:id/quiz", c.mission.SubmitMissionQuiz)
		authGroup.POST("/missions/photo", c.mission.SubmitPhotoQuestion)
		authGroup.POST("/missions/neo", c.mission.SubmitNeoQuestions)

		authGroup.GET("/achievements", c.achievement.GetAchievements)
		authGroup.GET("/history", c.achievement.GetProgressHistory)

		authGroup.POST("/solar-builder/save", c.solar.SaveSystem)
		authGroup.GET("/solar-builder/load", c.solar.LoadSystem)
	}
}

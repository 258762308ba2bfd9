package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"space_academy_backend/internal/config"
	"space_academy_backend/internal/controller"
	"space_academy_backend/internal/repository"
	"space_academy_backend/internal/service"
	"space_academy_backend/pkg/database"
	"space_academy_backend/pkg/logger"
	"space_academy_backend/pkg/monitoring"
	"space_academy_backend/pkg/security"
	"space_academy_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	question    *repository.QuestionRepository
	fact        *repository.FactRepository
	planet      *repository.PlanetRepository
	mission     *repository.MissionRepository
	quiz        *repository.QuizRepository
	attempt     *repository.AttemptRepository
	achievement *repository.AchievementRepository
	solar       *repository.SolarRepository
}

type services struct {
	storage     *service.StorageService
	auth        *service.AuthService
	user        *service.UserService
	content     *service.ContentService
	progression *service.ProgressionService
	quiz        *service.QuizService
	mission     *service.MissionService
	achievement *service.AchievementService
	spaceData   *service.SpaceDataService
	chat        *service.ChatService
	solar       *service.SolarService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	content     *controller.ContentController
	quiz        *controller.QuizController
	mission     *controller.MissionController
	achievement *controller.AchievementController
	spaceData   *controller.SpaceDataController
	chat        *controller.ChatController
	solar       *controller.SolarController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig fans a reloaded config out to registered callbacks. Only
// settings read per-request (rate limits, CORS lists, game constants already
// consumed at wiring time stay fixed) take effect without a restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	attemptTTL := time.Duration(cfg.Game.AttemptTTLMinutes) * time.Minute
	return &repositories{
		user:        repository.NewUserRepository(db),
		question:    repository.NewQuestionRepository(db),
		fact:        repository.NewFactRepository(db),
		planet:      repository.NewPlanetRepository(db),
		mission:     repository.NewMissionRepository(db),
		quiz:        repository.NewQuizRepository(db),
		attempt:     repository.NewAttemptRepository(rdb, attemptTTL),
		achievement: repository.NewAchievementRepository(db),
		solar:       repository.NewSolarRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.content = service.NewContentService(repos.planet, repos.fact, rdb)
	s.progression = service.NewProgressionService(repos.user, repos.achievement, cfg.Game)
	s.quiz = service.NewQuizService(repos.question, s.content, repos.attempt, repos.quiz, s.progression, repos.user, cfg.Game)
	s.mission = service.NewMissionService(repos.mission, repos.mission, s.progression, repos.user, cfg.Game)
	s.achievement = service.NewAchievementService(repos.achievement, repos.user, repos.quiz, repos.mission, s.progression)
	s.spaceData = service.NewSpaceDataService(cfg.SpaceData, rdb, logger.Log)
	s.chat = service.NewChatService(cfg.Chat, logger.Log)
	s.solar = service.NewSolarService(repos.solar)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		content:     controller.NewContentController(s.content),
		quiz:        controller.NewQuizController(s.quiz),
		mission:     controller.NewMissionController(s.mission),
		achievement: controller.NewAchievementController(s.achievement),
		spaceData:   controller.NewSpaceDataController(s.spaceData),
		chat:        controller.NewChatController(s.chat),
		solar:       controller.NewSolarController(s.solar),
		health:      controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("space-academy", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lucifer-0905/ignitiaLearn/internal/config"
	"github.com/Lucifer-0905/ignitiaLearn/internal/controller"
	"github.com/Lucifer-0905/ignitiaLearn/internal/repository"
	"github.com/Lucifer-0905/ignitiaLearn/internal/service"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/database"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/logger"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/monitoring"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/security"
	"github.com/Lucifer-0905/ignitiaLearn/pkg/tracing"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	course       *repository.CourseRepository
	learningPath *repository.LearningPathRepository
	progress     *repository.ProgressRepository
	assessment   *repository.AssessmentRepository
	project      *repository.ProjectRepository
	preferences  *repository.PreferencesRepository
	analytics    *repository.AnalyticsRepository
}

type services struct {
	auth         *service.AuthService
	storage      service.StorageProvider
	course       *service.CourseService
	learningPath *service.LearningPathService
	progress     *service.ProgressService
	preferences  *service.PreferencesService
	project      *service.ProjectService
	analytics    *service.AnalyticsService
	recommender  *service.RecommendationService
	assessment   *service.AssessmentService
}

type controllers struct {
	auth         *controller.AuthController
	course       *controller.CourseController
	learningPath *controller.LearningPathController
	project      *controller.ProjectController
	assessment   *controller.AssessmentController
	progress     *controller.ProgressController
	analytics    *controller.AnalyticsController
	preferences  *controller.PreferencesController
	ai           *controller.AIController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig propagates a reloaded configuration to registered
// listeners.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		course:       repository.NewCourseRepository(db),
		learningPath: repository.NewLearningPathRepository(db),
		progress:     repository.NewProgressRepository(db),
		assessment:   repository.NewAssessmentRepository(db),
		project:      repository.NewProjectRepository(db),
		preferences:  repository.NewPreferencesRepository(db),
		analytics:    repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageProvider(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{storage: storage}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.course = service.NewCourseService(repos.course)
	s.learningPath = service.NewLearningPathService(repos.learningPath, repos.course)
	s.analytics = service.NewAnalyticsService(repos.analytics, repos.course, rdb)
	s.progress = service.NewProgressService(repos.progress, repos.course, s.analytics)
	s.preferences = service.NewPreferencesService(repos.preferences)
	s.project = service.NewProjectService(repos.project)
	s.recommender = service.NewRecommendationService(cfg.AI, repos.learningPath)
	s.assessment = service.NewAssessmentService(repos.assessment, s.recommender)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		course:       controller.NewCourseController(s.course, s.storage),
		learningPath: controller.NewLearningPathController(s.learningPath),
		project:      controller.NewProjectController(s.project),
		assessment:   controller.NewAssessmentController(s.assessment),
		progress:     controller.NewProgressController(s.progress),
		analytics:    controller.NewAnalyticsController(s.analytics),
		preferences:  controller.NewPreferencesController(s.preferences),
		ai:           controller.NewAIController(s.recommender),
		health:       controller.NewHealthController(db, rdb),
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
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(func() string {
		if cfg.Server.Mode == "release" {
			return gin.ReleaseMode
		}
		return gin.DebugMode
	}())

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Analytics caching degrades gracefully without Redis.
		logger.Log.Warn("Redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("ignitia-learn", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
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

	if a.services != nil && a.services.assessment != nil {
		a.services.assessment.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}

package app

import (
	"context"
	"elearn_backend/internal/config"
	"elearn_backend/internal/controller"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/service"
	"elearn_backend/pkg/database"
	"elearn_backend/pkg/logger"
	"elearn_backend/pkg/monitoring"
	"elearn_backend/pkg/security"
	"elearn_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user             *repository.UserRepository
	course           *repository.CourseRepository
	enrollment       *repository.EnrollmentRepository
	moduleCompletion *repository.ModuleCompletionRepository
	courseCompletion *repository.CourseCompletionRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	user       *service.UserService
	course     *service.CourseService
	enrollment *service.EnrollmentService
	progress   *service.ProgressService
	completion *service.CompletionService
}

type controllers struct {
	auth   *controller.AuthController
	course *controller.CourseController
	user   *controller.UserController
	health *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:             repository.NewUserRepository(db),
		course:           repository.NewCourseRepository(db),
		enrollment:       repository.NewEnrollmentRepository(db),
		moduleCompletion: repository.NewModuleCompletionRepository(db),
		courseCompletion: repository.NewCourseCompletionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	return &services{
		auth:       service.NewAuthService(repos.user, cfg),
		storage:    storage,
		user:       service.NewUserService(repos.user, storage),
		course:     service.NewCourseService(repos.course, repos.courseCompletion, rdb),
		enrollment: service.NewEnrollmentService(repos.enrollment, repos.course),
		progress:   service.NewProgressService(repos.moduleCompletion, repos.enrollment, repos.course, db),
		completion: service.NewCompletionService(repos.courseCompletion, repos.course),
	}, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:   controller.NewAuthController(s.auth),
		course: controller.NewCourseController(s.course, s.enrollment, s.progress, s.completion),
		user:   controller.NewUserController(s.user),
		health: controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("elearn-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
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

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}

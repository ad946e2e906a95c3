package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"teacher_portal_backend/internal/config"
	"teacher_portal_backend/internal/controller"
	"teacher_portal_backend/internal/repository"
	"teacher_portal_backend/internal/service"
	"teacher_portal_backend/pkg/database"
	"teacher_portal_backend/pkg/logger"
	"teacher_portal_backend/pkg/monitoring"
	"teacher_portal_backend/pkg/security"
	"teacher_portal_backend/pkg/tracing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	class      *repository.ClassRepository
	topic      *repository.TopicRepository
	assignment *repository.AssignmentRepository
	quiz       *repository.QuizRepository
	question   *repository.QuestionRepository
	student    *repository.StudentRepository
	grade      *repository.GradeRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	class      *service.ClassService
	topic      *service.TopicService
	assignment *service.AssignmentService
	quiz       *service.QuizService
	grade      *service.GradeService
}

type controllers struct {
	auth       *controller.AuthController
	class      *controller.ClassController
	topic      *controller.TopicController
	assignment *controller.AssignmentController
	quiz       *controller.QuizController
	grade      *controller.GradeController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		class:      repository.NewClassRepository(db),
		topic:      repository.NewTopicRepository(db),
		assignment: repository.NewAssignmentRepository(db),
		quiz:       repository.NewQuizRepository(db),
		question:   repository.NewQuestionRepository(db),
		student:    repository.NewStudentRepository(db),
		grade:      repository.NewGradeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{}
	s.storage = storage
	s.auth = service.NewAuthService(repos.user, cfg)
	s.class = service.NewClassService(repos.class, repos.topic, repos.assignment, repos.student, repos.grade)
	s.topic = service.NewTopicService(repos.topic, repos.class, repos.assignment, repos.quiz)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.topic, repos.class)
	s.quiz = service.NewQuizService(repos.quiz, repos.question, repos.topic, repos.class, storage, rdb)
	s.grade = service.NewGradeService(repos.grade, repos.student, repos.assignment, repos.topic, repos.class)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		class:      controller.NewClassController(s.class),
		topic:      controller.NewTopicController(s.topic),
		assignment: controller.NewAssignmentController(s.assignment),
		quiz:       controller.NewQuizController(s.quiz),
		grade:      controller.NewGradeController(s.grade),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// release 模式默认跳过建表，-migrate / -migrate-only 强制执行
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Log.Info("Database migration completed")
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
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("teacher-portal", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
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

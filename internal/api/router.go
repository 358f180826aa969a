package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sistema-academico/academia-api/internal/api/handler"
	"github.com/sistema-academico/academia-api/internal/api/middleware"
	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/core/service"
	"github.com/sistema-academico/academia-api/internal/infrastructure/config"
	"github.com/sistema-academico/academia-api/internal/infrastructure/db/postgres"
	redisdb "github.com/sistema-academico/academia-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("academia"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewTokenRepository(pool)
	studentRepo := postgres.NewStudentRepository(pool)
	teacherRepo := postgres.NewTeacherRepository(pool)
	subjectRepo := postgres.NewSubjectRepository(pool)
	examRepo := postgres.NewExamRepository(pool)

	// --- Services ---
	authService := service.NewAuthService(userRepo, tokenRepo, cfg.TokenExpiry, log)
	studentService := service.NewStudentService(studentRepo, log)
	teacherService := service.NewTeacherService(teacherRepo, log)
	subjectService := service.NewSubjectService(subjectRepo, log)
	examService := service.NewExamService(examRepo, studentRepo, teacherRepo, subjectRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	teacherHandler := handler.NewTeacherHandler(teacherService)
	subjectHandler := handler.NewSubjectHandler(subjectService)
	examHandler := handler.NewExamHandler(examService)

	// --- Health probes and metrics (no auth, no throttle) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit)
	api := e.Group("/api", middleware.RateLimit(limiter, log))

	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Everything below requires a valid bearer token.
	protected := api.Group("", middleware.Auth(authService), middleware.RequireAbility(domain.AbilityAll))

	protected.POST("/logout", authHandler.Logout)
	protected.GET("/user", authHandler.Me)
	protected.GET("/me", authHandler.Me)
	protected.POST("/refresh-token", authHandler.RefreshToken)
	protected.PUT("/user", authHandler.UpdateProfile)
	protected.PUT("/profile", authHandler.UpdateProfile)

	protected.GET("/alumnos", studentHandler.Index)
	protected.POST("/alumnos", studentHandler.Store)
	protected.GET("/alumnos/:id", studentHandler.Show)
	protected.PUT("/alumnos/:id", studentHandler.Update)
	protected.PATCH("/alumnos/:id", studentHandler.Update)
	protected.DELETE("/alumnos/:id", studentHandler.Destroy)
	protected.GET("/alumnos/:id/examenes", examHandler.ByStudent)

	protected.GET("/profesores", teacherHandler.Index)
	protected.POST("/profesores", teacherHandler.Store)
	protected.GET("/profesores/:id", teacherHandler.Show)
	protected.PUT("/profesores/:id", teacherHandler.Update)
	protected.PATCH("/profesores/:id", teacherHandler.Update)
	protected.DELETE("/profesores/:id", teacherHandler.Destroy)

	protected.GET("/asignaturas", subjectHandler.Index)
	protected.POST("/asignaturas", subjectHandler.Store)
	protected.GET("/asignaturas/:id", subjectHandler.Show)
	protected.PUT("/asignaturas/:id", subjectHandler.Update)
	protected.PATCH("/asignaturas/:id", subjectHandler.Update)
	protected.DELETE("/asignaturas/:id", subjectHandler.Destroy)
	protected.GET("/asignaturas/:id/examenes", examHandler.BySubject)

	protected.GET("/examenes", examHandler.Index)
	protected.POST("/examenes", examHandler.Store)
	protected.GET("/examenes/:id", examHandler.Show)
	protected.PUT("/examenes/:id", examHandler.Update)
	protected.PATCH("/examenes/:id", examHandler.Update)
	protected.DELETE("/examenes/:id", examHandler.Destroy)

	return e
}

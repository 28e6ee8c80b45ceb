package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "salesdaily/internal/application/auth/usecases"
	customerusecases "salesdaily/internal/application/customer/usecases"
	dashboardusecases "salesdaily/internal/application/dashboard/usecases"
	reportusecases "salesdaily/internal/application/report/usecases"
	userusecases "salesdaily/internal/application/user/usecases"
	"salesdaily/internal/infrastructure/auth"
	"salesdaily/internal/infrastructure/config"
	"salesdaily/internal/infrastructure/ratelimit"
	"salesdaily/internal/infrastructure/repository"
	authhandlers "salesdaily/internal/interfaces/http/handlers/auth"
	customerhandlers "salesdaily/internal/interfaces/http/handlers/customer"
	dashboardhandlers "salesdaily/internal/interfaces/http/handlers/dashboard"
	reporthandlers "salesdaily/internal/interfaces/http/handlers/report"
	userhandlers "salesdaily/internal/interfaces/http/handlers/user"
	"salesdaily/internal/interfaces/http/middleware"
	"salesdaily/internal/interfaces/http/routes"
	"salesdaily/internal/shared/db"
	"salesdaily/internal/shared/logger"
)

// Router wires repositories, use cases, handlers and middleware into a
// gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface. redisClient may be nil, in which
// case login rate limiting falls back to a no-op limiter.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	userRepo := repository.NewUserRepository(database)
	customerRepo := repository.NewCustomerRepository(database)
	reportRepo := repository.NewReportRepository(database)
	visitRepo := repository.NewVisitRecordRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	txManager := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	var loginLimiter ratelimit.Limiter = ratelimit.NoopLimiter{}
	if redisClient != nil {
		loginLimiter = ratelimit.NewRedisLimiter(redisClient, "salesdaily")
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, loginLimiter, cfg.Auth.LoginRateLimit, log)
	getCurrentUserUC := authusecases.NewGetCurrentUserUseCase(userRepo, log)
	authHandler := authhandlers.NewAuthHandler(loginUC, getCurrentUserUC)

	createUserUC := userusecases.NewCreateUserUseCase(userRepo, hasher, log)
	updateUserUC := userusecases.NewUpdateUserUseCase(userRepo, hasher, log)
	deleteUserUC := userusecases.NewDeleteUserUseCase(userRepo, reportRepo, log)
	getUserUC := userusecases.NewGetUserUseCase(userRepo, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	userHandler := userhandlers.NewUserHandler(createUserUC, updateUserUC, deleteUserUC, getUserUC, listUsersUC)

	createCustomerUC := customerusecases.NewCreateCustomerUseCase(customerRepo, log)
	updateCustomerUC := customerusecases.NewUpdateCustomerUseCase(customerRepo, log)
	deleteCustomerUC := customerusecases.NewDeleteCustomerUseCase(customerRepo, visitRepo, log)
	getCustomerUC := customerusecases.NewGetCustomerUseCase(customerRepo, log)
	listCustomersUC := customerusecases.NewListCustomersUseCase(customerRepo, log)
	customerHandler := customerhandlers.NewCustomerHandler(
		createCustomerUC, updateCustomerUC, deleteCustomerUC, getCustomerUC, listCustomersUC)

	createReportUC := reportusecases.NewCreateReportUseCase(reportRepo, customerRepo, txManager, log)
	updateReportUC := reportusecases.NewUpdateReportUseCase(reportRepo, visitRepo, customerRepo, txManager, log)
	deleteReportUC := reportusecases.NewDeleteReportUseCase(reportRepo, txManager, log)
	getReportUC := reportusecases.NewGetReportUseCase(reportRepo, commentRepo, userRepo, log)
	listReportsUC := reportusecases.NewListReportsUseCase(reportRepo, log)
	addCommentUC := reportusecases.NewAddCommentUseCase(reportRepo, commentRepo, log)
	updateCommentUC := reportusecases.NewUpdateCommentUseCase(commentRepo, log)
	deleteCommentUC := reportusecases.NewDeleteCommentUseCase(commentRepo, log)
	listCommentsUC := reportusecases.NewListCommentsUseCase(reportRepo, commentRepo, userRepo, log)
	reportHandler := reporthandlers.NewReportHandler(
		createReportUC, updateReportUC, deleteReportUC, getReportUC, listReportsUC,
		addCommentUC, updateCommentUC, deleteCommentUC, listCommentsUC)

	getDashboardUC := dashboardusecases.NewGetDashboardUseCase(reportRepo, log)
	dashboardHandler := dashboardhandlers.NewDashboardHandler(getDashboardUC)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupCustomerRoutes(engine, &routes.CustomerRouteConfig{
		CustomerHandler: customerHandler,
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupReportRoutes(engine, &routes.ReportRouteConfig{
		ReportHandler:  reportHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupDashboardRoutes(engine, &routes.DashboardRouteConfig{
		DashboardHandler: dashboardHandler,
		AuthMiddleware:   authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine, mostly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts listening on addr and blocks until the server exits.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Package http wires the HTTP surface: router construction, middleware
// ordering and route registration.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	assetusecases "campusdesk/internal/application/asset/usecases"
	leadusecases "campusdesk/internal/application/lead/usecases"
	productusecases "campusdesk/internal/application/product/usecases"
	schoolusecases "campusdesk/internal/application/school/usecases"
	ticketusecases "campusdesk/internal/application/ticket/usecases"
	userusecases "campusdesk/internal/application/user/usecases"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/infrastructure/cache"
	"campusdesk/internal/infrastructure/config"
	"campusdesk/internal/infrastructure/email"
	"campusdesk/internal/infrastructure/repository"
	"campusdesk/internal/interfaces/http/handlers"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/db"
	"campusdesk/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	authMiddleware *middleware.AuthMiddleware
	rateLimit      gin.HandlerFunc

	authHandler    *handlers.AuthHandler
	schoolHandler  *handlers.SchoolHandler
	productHandler *handlers.ProductHandler
	assetHandler   *handlers.AssetHandler
	ticketHandler  *handlers.TicketHandler
	userHandler    *handlers.UserHandler
	leadHandler    *handlers.LeadHandler
	healthHandler  *handlers.HealthHandler
}

// NewRouter builds the full dependency graph: repositories over the given
// database handle, usecases over the repositories, handlers over the
// usecases.
func NewRouter(cfg *config.Config, gormDB *gorm.DB, limiter cache.RateLimiter, log logger.Interface) *Router {
	if cfg.Server.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	jwtService := auth.NewJWTService(&cfg.Auth.JWT)
	hasher := auth.NewBcryptPasswordHasher(&cfg.Auth.Password)
	txManager := db.NewTransactionManager(gormDB)

	var notifier email.Notifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPNotifier(&cfg.Email, log)
	} else {
		notifier = email.NewLogNotifier(log)
	}

	userRepo := repository.NewUserRepository(gormDB)
	schoolRepo := repository.NewSchoolRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	assetRepo := repository.NewAssetRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	inquiryRepo := repository.NewInquiryRepository(gormDB)
	subscriptionRepo := repository.NewSubscriptionRepository(gormDB)

	authHandler := handlers.NewAuthHandler(
		userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		userusecases.NewRefreshTokenUseCase(userRepo, jwtService, log),
		cfg.Auth.Cookie,
		log,
	)

	schoolHandler := handlers.NewSchoolHandler(
		schoolusecases.NewCreateSchoolUseCase(schoolRepo, log),
		schoolusecases.NewUpdateSchoolUseCase(schoolRepo, log),
		schoolusecases.NewDeleteSchoolUseCase(schoolRepo, log),
		schoolusecases.NewGetSchoolUseCase(schoolRepo, userRepo, log),
		schoolusecases.NewListSchoolsUseCase(schoolRepo, userRepo, log),
		log,
	)

	productHandler := handlers.NewProductHandler(
		productusecases.NewCreateProductUseCase(productRepo, log),
		productusecases.NewUpdateProductUseCase(productRepo, log),
		productusecases.NewDeleteProductUseCase(productRepo, assetRepo, log),
		productusecases.NewGetProductUseCase(productRepo, log),
		productusecases.NewListProductsUseCase(productRepo, log),
		log,
	)

	assetHandler := handlers.NewAssetHandler(
		assetusecases.NewAssignAssetUseCase(assetRepo, productRepo, schoolRepo, txManager, log),
		assetusecases.NewDeassignAssetUseCase(assetRepo, productRepo, txManager, log),
		assetusecases.NewUpdateAssetUseCase(assetRepo, log),
		assetusecases.NewGetAssetUseCase(assetRepo, userRepo, log),
		assetusecases.NewListAssetsUseCase(assetRepo, userRepo, log),
		log,
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, schoolRepo, assetRepo, userRepo, notifier, log),
		ticketusecases.NewSetTicketStatusUseCase(ticketRepo, log),
		ticketusecases.NewAssignTicketUseCase(ticketRepo, userRepo, log),
		ticketusecases.NewChangeTicketPriorityUseCase(ticketRepo, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, userRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, userRepo, log),
		ticketusecases.NewTicketStatsUseCase(ticketRepo, userRepo, log),
		log,
	)

	userHandler := handlers.NewUserHandler(
		userusecases.NewCreateUserUseCase(userRepo, hasher, log),
		userusecases.NewUpdateUserUseCase(userRepo, hasher, log),
		userusecases.NewDeleteUserUseCase(userRepo, log),
		userusecases.NewGetUserUseCase(userRepo, log),
		userusecases.NewListUsersUseCase(userRepo, log),
		log,
	)

	leadHandler := handlers.NewLeadHandler(
		leadusecases.NewSubmitInquiryUseCase(inquiryRepo, notifier, log),
		leadusecases.NewSubscribeNewsletterUseCase(subscriptionRepo, log),
		leadusecases.NewListInquiriesUseCase(inquiryRepo, log),
		leadusecases.NewUpdateInquiryStatusUseCase(inquiryRepo, log),
		log,
	)

	rateLimit := middleware.RateLimit(
		limiter,
		cfg.RateLimit.PublicLimit,
		time.Duration(cfg.RateLimit.PublicWindowSeconds)*time.Second,
		log,
	)

	return &Router{
		engine:         gin.New(),
		cfg:            cfg,
		logger:         log,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		rateLimit:      rateLimit,
		authHandler:    authHandler,
		schoolHandler:  schoolHandler,
		productHandler: productHandler,
		assetHandler:   assetHandler,
		ticketHandler:  ticketHandler,
		userHandler:    userHandler,
		leadHandler:    leadHandler,
		healthHandler:  handlers.NewHealthHandler(gormDB),
	}
}

// Engine exposes the configured gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthHandler.Health)

	r.setupPublicRoutes()
	r.setupAPIRoutes()
}

// setupPublicRoutes configures the unauthenticated marketing endpoints.
// These are the only rate-limited routes; everything else sits behind auth.
func (r *Router) setupPublicRoutes() {
	public := r.engine.Group("/public")
	{
		public.POST("/inquiries", r.rateLimit, r.leadHandler.SubmitInquiry)
		public.POST("/newsletter", r.rateLimit, r.leadHandler.Subscribe)
	}
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", r.rateLimit, r.authHandler.Login)
		auth.POST("/refresh", r.authHandler.Refresh)
		auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
	}

	secured := v1.Group("")
	secured.Use(r.authMiddleware.RequireAuth())

	// School, asset, and ticket access starts at school_admin: lower roles
	// are refused here, before scope derivation ever sees them.
	schools := secured.Group("/schools")
	schools.Use(authorization.RequireRole(authorization.RoleSchoolAdmin))
	{
		schools.GET("", r.schoolHandler.ListSchools)
		schools.GET("/:id", r.schoolHandler.GetSchool)
		schools.POST("", authorization.RequireAdmin(), r.schoolHandler.CreateSchool)
		schools.PUT("/:id", authorization.RequireAdmin(), r.schoolHandler.UpdateSchool)
		schools.DELETE("/:id", authorization.RequireSuperAdmin(), r.schoolHandler.DeleteSchool)
	}

	products := secured.Group("/products")
	products.Use(authorization.RequireRole(authorization.RoleTechnician))
	{
		products.GET("", r.productHandler.ListProducts)
		products.GET("/:id", r.productHandler.GetProduct)
		products.POST("", authorization.RequireAdmin(), r.productHandler.CreateProduct)
		products.PUT("/:id", authorization.RequireAdmin(), r.productHandler.UpdateProduct)
		products.DELETE("/:id", authorization.RequireSuperAdmin(), r.productHandler.DeleteProduct)
	}

	// Writes are admin-or-above; the outright delete is the one destructive
	// op and stays with super_admin. Deassign-via-POST releases the product
	// the same way but is a routine admin operation.
	assets := secured.Group("/assets")
	assets.Use(authorization.RequireRole(authorization.RoleSchoolAdmin))
	{
		assets.GET("", r.assetHandler.ListAssets)
		assets.GET("/:id", r.assetHandler.GetAsset)
		assets.POST("", authorization.RequireAdmin(), r.assetHandler.AssignAsset)
		assets.PUT("/:id", authorization.RequireAdmin(), r.assetHandler.UpdateAsset)
		assets.POST("/:id/deassign", authorization.RequireAdmin(), r.assetHandler.DeassignAsset)
		assets.DELETE("/:id", authorization.RequireSuperAdmin(), r.assetHandler.DeassignAsset)
	}

	tickets := secured.Group("/tickets")
	tickets.Use(authorization.RequireRole(authorization.RoleSchoolAdmin))
	{
		tickets.GET("", r.ticketHandler.ListTickets)
		tickets.GET("/stats", authorization.RequireAdmin(), r.ticketHandler.Stats)
		tickets.GET("/:id", r.ticketHandler.GetTicket)
		tickets.POST("", r.ticketHandler.CreateTicket)
		tickets.PATCH("/:id/status", r.ticketHandler.SetStatus)
		tickets.PATCH("/:id/priority", r.ticketHandler.ChangePriority)
		tickets.POST("/:id/assign", authorization.RequireAdmin(), r.ticketHandler.AssignTicket)
	}

	users := secured.Group("/users")
	users.Use(authorization.RequireAdmin())
	{
		users.GET("", r.userHandler.ListUsers)
		users.GET("/:id", r.userHandler.GetUser)
		users.POST("", r.userHandler.CreateUser)
		users.PUT("/:id", r.userHandler.UpdateUser)
		users.DELETE("/:id", authorization.RequireSuperAdmin(), r.userHandler.DeleteUser)
	}

	inquiries := secured.Group("/inquiries")
	inquiries.Use(authorization.RequireAdmin())
	{
		inquiries.GET("", r.leadHandler.ListInquiries)
		inquiries.PATCH("/:id/status", r.leadHandler.UpdateInquiryStatus)
	}
}

package routes

import (
	"fmt"

	"zfast-backend/internal/api/handlers"
	"zfast-backend/internal/api/middleware"
	"zfast-backend/internal/auth"
	"zfast-backend/internal/config"
	"zfast-backend/internal/repository"
	"zfast-backend/internal/service"
	"zfast-backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const uploadURLPrefix = "/uploads"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.ErrorDetails(cfg.IsDevelopment()))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(db)
	teamInfoRepo := repository.NewTeamInfoRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	sponsorRepo := repository.NewSponsorRepository(db)
	seasonRepo := repository.NewSeasonRepository(db)
	galleryRepo := repository.NewSeasonGalleryRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	carRepo := repository.NewCarRepository(db)
	carSpecRepo := repository.NewCarSpecRepository(db)
	aboutSlideRepo := repository.NewAboutSlideRepository(db)
	contactRepo := repository.NewContactMessageRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	imageStore, err := storage.NewLocalStore(cfg.UploadDir, uploadURLPrefix, cfg.UploadMaxWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload store: %w", err)
	}

	// Initialize services
	var (
		teamMemberService service.TeamMemberServiceInterface = service.NewTeamMemberService(teamMemberRepo, validator)
		sponsorService    service.SponsorServiceInterface    = service.NewSponsorService(sponsorRepo, validator)
		seasonService     service.SeasonServiceInterface     = service.NewSeasonService(seasonRepo, validator)
		newsService       service.NewsServiceInterface       = service.NewNewsService(newsRepo, validator)
		carService        service.CarServiceInterface        = service.NewCarService(carRepo, validator)
		carSpecService    service.CarSpecServiceInterface    = service.NewCarSpecService(carSpecRepo, validator)
		aboutSlideService service.AboutSlideServiceInterface = service.NewAboutSlideService(aboutSlideRepo, validator)
	)
	teamInfoService := service.NewTeamInfoService(teamInfoRepo)
	galleryService := service.NewSeasonGalleryService(galleryRepo, seasonRepo, validator)
	contactService := service.NewContactService(contactRepo, validator)
	dashboardService := service.NewDashboardService(dashboardRepo, contactRepo)
	uploadService := service.NewUploadService(imageStore, cfg.UploadMaxBytes)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), adminRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	requireAuth := auth.NewAuthMiddleware(authService).RequireAuth()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg.Environment)
	teamInfoHandler := handlers.NewTeamInfoHandler(teamInfoService)
	galleryHandler := handlers.NewSeasonGalleryHandler(galleryService)
	contactHandler := handlers.NewContactHandler(contactService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	uploadHandler := handlers.NewUploadHandler(uploadService, cfg.UploadMaxBytes)
	staticHandler := handlers.NewStaticHandler(cfg.PublicDir, cfg.IsProduction())

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Health check routes
		api.GET("/health", healthHandler.Health)
		api.GET("/health/ready", healthHandler.Ready)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/verify", requireAuth, authHandler.Verify)
			authRoutes.POST("/change-password", requireAuth, authHandler.ChangePassword)
		}

		api.GET("/team-info", teamInfoHandler.Get)
		api.PUT("/team-info", requireAuth, teamInfoHandler.Update)

		registerResource(api, "/team-members", handlers.NewResourceHandler(teamMemberService), requireAuth, false)
		registerResource(api, "/sponsors", handlers.NewResourceHandler(sponsorService), requireAuth, false)
		registerResource(api, "/seasons", handlers.NewResourceHandler(seasonService), requireAuth, false)
		registerResource(api, "/news", handlers.NewResourceHandler(newsService), requireAuth, false)
		registerResource(api, "/cars", handlers.NewResourceHandler(carService), requireAuth, true)
		registerResource(api, "/car-specs", handlers.NewResourceHandler(carSpecService), requireAuth, false)
		registerResource(api, "/about", handlers.NewResourceHandler(aboutSlideService), requireAuth, false)

		gallery := api.Group("/seasons/:id/gallery")
		{
			gallery.GET("", galleryHandler.List)
			gallery.POST("", requireAuth, galleryHandler.Create)
			gallery.PUT("/:imgId", requireAuth, galleryHandler.Update)
			gallery.DELETE("/:imgId", requireAuth, galleryHandler.Delete)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", contactHandler.Submit)
			contact.GET("", requireAuth, contactHandler.List)
			contact.PUT("/:id/read", requireAuth, contactHandler.MarkRead)
			contact.DELETE("/:id", requireAuth, contactHandler.Delete)
		}

		api.POST("/upload", requireAuth, uploadHandler.Upload)
		api.GET("/dashboard", requireAuth, dashboardHandler.Summary)
	}

	// Uploaded files and the frontend
	router.Static(uploadURLPrefix, cfg.UploadDir)
	router.NoRoute(staticHandler.NotFound)

	return router, nil
}

// registerResource mounts list/get publicly and create/update/delete behind requireAuth.
// protectGet also puts the single-record read behind requireAuth.
func registerResource[Req any, Res any](
	api *gin.RouterGroup,
	path string,
	h *handlers.ResourceHandler[Req, Res],
	requireAuth gin.HandlerFunc,
	protectGet bool,
) {
	group := api.Group(path)

	group.GET("", h.List)
	if protectGet {
		group.GET("/:id", requireAuth, h.Get)
	} else {
		group.GET("/:id", h.Get)
	}
	group.POST("", requireAuth, h.Create)
	group.PUT("/:id", requireAuth, h.Update)
	group.DELETE("/:id", requireAuth, h.Delete)
}

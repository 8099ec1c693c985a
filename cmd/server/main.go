package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maslima80/listingshow/adapters/event"
	httpAdapter "github.com/maslima80/listingshow/adapters/http"
	"github.com/maslima80/listingshow/adapters/media_storage"
	"github.com/maslima80/listingshow/adapters/persistence"
	authUC "github.com/maslima80/listingshow/internal/application/usecase/auth"
	leadUC "github.com/maslima80/listingshow/internal/application/usecase/lead"
	mediaUC "github.com/maslima80/listingshow/internal/application/usecase/media"
	propertyUC "github.com/maslima80/listingshow/internal/application/usecase/property"
	quotaUC "github.com/maslima80/listingshow/internal/application/usecase/quota"
	teamUC "github.com/maslima80/listingshow/internal/application/usecase/team"
	testimonialUC "github.com/maslima80/listingshow/internal/application/usecase/testimonial"
	videoUC "github.com/maslima80/listingshow/internal/application/usecase/video"
	"github.com/maslima80/listingshow/internal/config"
	"github.com/maslima80/listingshow/pkg/auth"
	"github.com/maslima80/listingshow/pkg/logger"
	"github.com/maslima80/listingshow/pkg/tracing"
)

func main() {
	fmt.Println("Start ListingShow API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "listingshow-api")
	if err != nil {
		log.Fatalf("FATAL: cannot init tracing: %v", err)
	}
	defer tp.Shutdown(context.Background())

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	teamRepo := persistence.NewPostgresTeamRepo(dbPool, appLogger)
	planResolver := persistence.NewPostgresPlanResolver(dbPool, appLogger)
	propertyRepo := persistence.NewPostgresPropertyRepo(dbPool, appLogger)
	assetRepo := persistence.NewPostgresAssetRepo(dbPool, appLogger)
	quotaRepo := persistence.NewPostgresQuotaRepo(dbPool, appLogger)
	leadRepo := persistence.NewPostgresLeadRepo(dbPool, appLogger)
	testimonialRepo := persistence.NewPostgresTestimonialRepo(dbPool, appLogger)
	tokenStore := persistence.NewRedisTokenStore(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	videoHost, err := media_storage.NewBunnyAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize video host: %v", err)
	}
	imageStorage, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize image storage: %v", err)
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	quotaUseCase := quotaUC.NewQuotaUseCase(quotaRepo, planResolver)

	uploadVideoUseCase := videoUC.NewUploadVideoUseCase(assetRepo, propertyRepo, videoHost, kafkaClient, appLogger)
	updateDurationUseCase := videoUC.NewUpdateDurationUseCase(assetRepo, propertyRepo, videoHost, quotaRepo, quotaUseCase, kafkaClient, appLogger)
	deleteVideoUseCase := videoUC.NewDeleteVideoUseCase(assetRepo, propertyRepo, videoHost, quotaRepo, kafkaClient, appLogger)
	thumbnailOptionsUseCase := videoUC.NewThumbnailOptionsUseCase(assetRepo, propertyRepo, videoHost)
	setThumbnailUseCase := videoUC.NewSetThumbnailUseCase(assetRepo, propertyRepo)

	uploadImageUseCase := mediaUC.NewUploadImageUseCase(assetRepo, propertyRepo, imageStorage, appLogger)
	deleteImageUseCase := mediaUC.NewDeleteImageUseCase(assetRepo, propertyRepo, imageStorage, appLogger)

	createPropertyUseCase := propertyUC.NewCreatePropertyUseCase(propertyRepo, appLogger)
	listPropertiesUseCase := propertyUC.NewListPropertiesUseCase(propertyRepo)
	getPropertyUseCase := propertyUC.NewGetPropertyUseCase(propertyRepo, assetRepo)
	updatePropertyUseCase := propertyUC.NewUpdatePropertyUseCase(propertyRepo, assetRepo)
	deletePropertyUseCase := propertyUC.NewDeletePropertyUseCase(propertyRepo, assetRepo, videoHost, imageStorage, quotaRepo, appLogger)

	captureLeadUseCase := leadUC.NewCaptureLeadUseCase(leadRepo, kafkaClient, appLogger)
	listLeadsUseCase := leadUC.NewListLeadsUseCase(leadRepo)
	updateLeadStatusUseCase := leadUC.NewUpdateLeadStatusUseCase(leadRepo)

	requestLinkUseCase := testimonialUC.NewRequestLinkUseCase(tokenStore)
	submitTestimonialUseCase := testimonialUC.NewSubmitTestimonialUseCase(testimonialRepo, tokenStore)
	listTestimonialsUseCase := testimonialUC.NewListTestimonialsUseCase(testimonialRepo)
	moderateTestimonialUseCase := testimonialUC.NewModerateTestimonialUseCase(testimonialRepo)

	themeSettingsUseCase := teamUC.NewThemeSettingsUseCase(teamRepo)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	quotaHandler := httpAdapter.NewQuotaHandler(quotaUseCase)
	videoHandler := httpAdapter.NewVideoHandler(
		uploadVideoUseCase,
		updateDurationUseCase,
		deleteVideoUseCase,
		thumbnailOptionsUseCase,
		setThumbnailUseCase,
	)
	mediaHandler := httpAdapter.NewMediaHandler(uploadImageUseCase, deleteImageUseCase)
	propertyHandler := httpAdapter.NewPropertyHandler(
		createPropertyUseCase,
		listPropertiesUseCase,
		getPropertyUseCase,
		updatePropertyUseCase,
		deletePropertyUseCase,
	)
	leadHandler := httpAdapter.NewLeadHandler(captureLeadUseCase, listLeadsUseCase, updateLeadStatusUseCase)
	testimonialHandler := httpAdapter.NewTestimonialHandler(
		requestLinkUseCase,
		submitTestimonialUseCase,
		listTestimonialsUseCase,
		moderateTestimonialUseCase,
	)
	teamHandler := httpAdapter.NewTeamHandler(themeSettingsUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	// Setup Gin router
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/auth/login", authHandler.Login)

		// Public endpoints backing listing pages. No token needed.
		api.POST("/leads", leadHandler.CaptureLead)
		api.POST("/testimonials/submit", testimonialHandler.SubmitTestimonial)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/quota/usage", quotaHandler.GetUsage)

			private.GET("/team", teamHandler.GetTeam)
			private.PUT("/team/theme", teamHandler.UpdateTheme)

			properties := private.Group("/properties")
			{
				properties.POST("", propertyHandler.CreateProperty)
				properties.GET("", propertyHandler.ListProperties)
				properties.GET("/:id", propertyHandler.GetProperty)
				properties.PUT("/:id", propertyHandler.UpdateProperty)
				properties.DELETE("/:id", propertyHandler.DeleteProperty)

				properties.POST("/:id/videos", videoHandler.UploadVideo)
				properties.POST("/:id/images", mediaHandler.UploadImage)
			}

			videos := private.Group("/videos")
			{
				videos.POST("/:id/refresh", videoHandler.RefreshDuration)
				videos.DELETE("/:id", videoHandler.DeleteVideo)
				videos.GET("/:id/thumbnails", videoHandler.ListThumbnails)
				videos.PUT("/:id/thumbnail", videoHandler.SetThumbnail)
			}

			private.DELETE("/images/:id", mediaHandler.DeleteImage)

			leads := private.Group("/leads")
			{
				leads.GET("", leadHandler.ListLeads)
				leads.PATCH("/:id/status", leadHandler.UpdateLeadStatus)
			}

			testimonials := private.Group("/testimonials")
			{
				testimonials.POST("/link", testimonialHandler.RequestLink)
				testimonials.GET("", testimonialHandler.ListTestimonials)
				testimonials.PATCH("/:id", testimonialHandler.ModerateTestimonial)
				testimonials.DELETE("/:id", testimonialHandler.DeleteTestimonial)
			}
		}
	}

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}

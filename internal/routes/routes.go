package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-console/internal/platform"
	"asset-console/internal/services"
	"asset-console/internal/session"
	"asset-console/pkg/config"
	"asset-console/pkg/filestorage"
	"asset-console/pkg/middleware"
	"asset-console/pkg/service"
)

// InitRouter wires every screen's controller behind /api. The returned
// cleanup function stops the dashboard poller and must run on shutdown.
func InitRouter(e *echo.Echo, platformClient *platform.Client, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) func() {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	secureGroup := api.Group("", authMW.Auth)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Uploads.StagingDir)
	if err != nil {
		logger.Fatal("failed to create upload staging storage", zap.Error(err))
	}

	cacheRepo := session.NewRedisCacheRepository(redisClient)
	sessionStore := session.NewStore(cacheRepo, logger, cfg.JWT.AccessTokenTTL)

	dashboardService := services.NewDashboardService(platformClient, logger)
	rmaService := services.NewRmaService(platformClient, logger)
	exportService := services.NewExportService(rmaService, logger)
	requisitionService := services.NewRequisitionService(platformClient, logger)
	rightsService := services.NewUserRightsService(platformClient, sessionStore, logger)
	ticketService := services.NewTicketService(platformClient, fileStorage, logger)
	notificationService := services.NewNotificationService(platformClient, logger)

	runDashboardRouter(secureGroup, dashboardService, logger)
	runRmaRouter(secureGroup, rmaService, exportService, logger)
	runRequisitionRouter(secureGroup, requisitionService, logger)
	runUserRightsRouter(secureGroup, rightsService, logger)
	runTicketRouter(secureGroup, ticketService, logger)
	runCatalogRouter(secureGroup, logger)
	runNotificationRouter(secureGroup, notificationService, logger)

	dashboardService.StartPolling(cfg.Dashboard.PollInterval)
	logger.Info("router initialized", zap.Duration("dashboardPollInterval", cfg.Dashboard.PollInterval))

	return dashboardService.StopPolling
}

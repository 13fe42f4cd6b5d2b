package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-console/internal/controllers"
	"asset-console/internal/services"
)

func runNotificationRouter(g *echo.Group, notificationService services.NotificationServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewNotificationController(notificationService, logger)

	g.GET("/notifications", ctrl.GetNotifications)
}

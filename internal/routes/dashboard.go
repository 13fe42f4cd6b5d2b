package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-console/internal/controllers"
	"asset-console/internal/services"
)

func runDashboardRouter(g *echo.Group, dashboardService services.DashboardServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewDashboardController(dashboardService, logger)

	g.GET("/dashboard", ctrl.GetDashboard)
}

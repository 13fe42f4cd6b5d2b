package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-console/internal/controllers"
)

func runCatalogRouter(g *echo.Group, logger *zap.Logger) {
	ctrl := controllers.NewCatalogController(logger)

	g.GET("/catalog/statuses", ctrl.GetStatuses)
}

package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-console/internal/controllers"
	"asset-console/internal/services"
)

func runRmaRouter(g *echo.Group, rmaService services.RmaServiceInterface, exportService services.ExportServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewRmaController(rmaService, exportService, logger)

	g.GET("/rma", ctrl.GetRmaRecords)
	g.GET("/rma/export", ctrl.ExportRmaRecords)
}

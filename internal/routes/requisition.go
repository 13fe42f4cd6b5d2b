package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-console/internal/controllers"
	"asset-console/internal/services"
)

func runRequisitionRouter(g *echo.Group, requisitionService services.RequisitionServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewRequisitionController(requisitionService, logger)

	g.GET("/requisitions", ctrl.GetRequisitions)
}

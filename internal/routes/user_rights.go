package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-console/internal/controllers"
	"asset-console/internal/services"
)

func runUserRightsRouter(g *echo.Group, rightsService services.UserRightsServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewUserRightsController(rightsService, logger)

	g.GET("/users/rights", ctrl.GetUserRights)
	g.PUT("/users/:id/rights", ctrl.UpdateUserRights)
}

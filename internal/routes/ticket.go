package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-console/internal/controllers"
	"asset-console/internal/services"
)

func runTicketRouter(g *echo.Group, ticketService services.TicketServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewTicketController(ticketService, logger)

	g.POST("/tickets", ctrl.CreateTicket)
	g.POST("/tickets/priority-preview", ctrl.PreviewPriority)
	g.GET("/tickets/:id/edit", ctrl.GetTicketForEdit)
	g.POST("/tickets/:id/attachments", ctrl.UploadAttachments)
}

package controllers

import (
	"net/http"

	"asset-console/internal/services"
	"asset-console/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
	logger              *zap.Logger
}

func NewNotificationController(notificationService services.NotificationServiceInterface, logger *zap.Logger) *NotificationController {
	return &NotificationController{notificationService: notificationService, logger: logger}
}

func (c *NotificationController) GetNotifications(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	items, unread, err := c.notificationService.GetNotifications(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, platformError(err), c.logger)
	}

	body := map[string]interface{}{
		"list":         items,
		"unread_count": unread,
	}
	return utils.SuccessResponse(ctx, body, "notifications loaded", http.StatusOK)
}

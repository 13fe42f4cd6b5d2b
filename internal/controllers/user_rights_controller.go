package controllers

import (
	"net/http"
	"strconv"

	"asset-console/internal/dto"
	"asset-console/internal/services"
	apperrors "asset-console/pkg/errors"
	"asset-console/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserRightsController struct {
	rightsService services.UserRightsServiceInterface
	logger        *zap.Logger
}

func NewUserRightsController(rightsService services.UserRightsServiceInterface, logger *zap.Logger) *UserRightsController {
	return &UserRightsController{rightsService: rightsService, logger: logger}
}

func (c *UserRightsController) GetUserRights(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, err := c.rightsService.GetUserRights(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, platformError(err), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "user rights loaded", http.StatusOK)
}

func (c *UserRightsController) UpdateUserRights(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"invalid user id",
				err,
				map[string]interface{}{"param": ctx.Param("id")},
			),
			c.logger,
		)
	}

	var updateDTO dto.UpdateRightsDTO
	if err := ctx.Bind(&updateDTO); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&updateDTO); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	sessionUserID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	if err := c.rightsService.UpdateUserRights(reqCtx, userID, updateDTO, sessionUserID); err != nil {
		return utils.ErrorResponse(ctx, platformError(err), c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "rights updated", http.StatusOK)
}

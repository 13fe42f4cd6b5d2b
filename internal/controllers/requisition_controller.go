package controllers

import (
	"asset-console/internal/services"
	"asset-console/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RequisitionController struct {
	requisitionService services.RequisitionServiceInterface
	logger             *zap.Logger
}

func NewRequisitionController(requisitionService services.RequisitionServiceInterface, logger *zap.Logger) *RequisitionController {
	return &RequisitionController{requisitionService: requisitionService, logger: logger}
}

func (c *RequisitionController) GetRequisitions(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, pagination, err := c.requisitionService.GetRequisitions(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, platformError(err), c.logger)
	}

	total := uint64(len(res.Items))
	page := filter.Page
	if pagination != nil {
		total = uint64(pagination.Total)
		page = pagination.Page
	}
	return utils.SuccessListResponse(ctx, res, "requisitions loaded", total, page, filter.Limit)
}

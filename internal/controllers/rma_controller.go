package controllers

import (
	"net/http"

	"asset-console/internal/services"
	"asset-console/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RmaController struct {
	rmaService    services.RmaServiceInterface
	exportService services.ExportServiceInterface
	logger        *zap.Logger
}

func NewRmaController(rmaService services.RmaServiceInterface, exportService services.ExportServiceInterface, logger *zap.Logger) *RmaController {
	return &RmaController{rmaService: rmaService, exportService: exportService, logger: logger}
}

func (c *RmaController) GetRmaRecords(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, err := c.rmaService.GetRmaRecords(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, platformError(err), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "rma records loaded", http.StatusOK)
}

// ExportRmaRecords streams the filtered list as a spreadsheet; the same query
// parameters as the list view apply.
func (c *RmaController) ExportRmaRecords(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	buf, fileName, err := c.exportService.ExportRmaRecords(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, platformError(err), c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes(),
	)
}

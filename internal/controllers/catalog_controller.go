package controllers

import (
	"net/http"

	"asset-console/internal/catalog"
	"asset-console/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CatalogController serves the in-process display catalogs. The data ships
// with the binary, so there is no service layer behind it.
type CatalogController struct {
	logger *zap.Logger
}

func NewCatalogController(logger *zap.Logger) *CatalogController {
	return &CatalogController{logger: logger}
}

func (c *CatalogController) GetStatuses(ctx echo.Context) error {
	body := map[string]interface{}{
		"workflow": catalog.WorkflowStatuses(),
		"asset":    catalog.AssetStatuses(),
	}
	return utils.SuccessResponse(ctx, body, "status catalog", http.StatusOK)
}

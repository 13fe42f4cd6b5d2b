package controllers

import (
	"net/http"

	"asset-console/internal/dto"
	"asset-console/internal/services"
	"asset-console/internal/ticketdraft"
	apperrors "asset-console/pkg/errors"
	"asset-console/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TicketController struct {
	ticketService services.TicketServiceInterface
	logger        *zap.Logger
}

func NewTicketController(ticketService services.TicketServiceInterface, logger *zap.Logger) *TicketController {
	return &TicketController{ticketService: ticketService, logger: logger}
}

// PreviewPriority recomputes the score, tier and SLA targets for the values
// currently in the form, before anything is submitted.
func (c *TicketController) PreviewPriority(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var req dto.PriorityPreviewRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ticketService.PreviewPriority(reqCtx, req)
	if err != nil {
		return utils.ErrorResponse(ctx, platformError(err), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "priority preview computed", http.StatusOK)
}

func (c *TicketController) CreateTicket(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var draft ticketdraft.Draft
	if err := ctx.Bind(&draft); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}

	res, err := c.ticketService.CreateTicket(reqCtx, draft)
	if err != nil {
		return utils.ErrorResponse(ctx, platformError(err), c.logger)
	}

	return utils.SuccessResponse(ctx, res, "ticket created", http.StatusCreated)
}

// GetTicketForEdit returns the hydrated form values for a still-editable
// ticket, or an explanatory conflict when the workflow has moved on.
func (c *TicketController) GetTicketForEdit(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	ticketID := ctx.Param("id")

	form, err := c.ticketService.GetTicketForEdit(reqCtx, ticketID)
	if err != nil {
		return utils.ErrorResponse(ctx, platformError(err), c.logger)
	}

	return utils.SuccessResponse(ctx, form.Draft(), "ticket loaded for editing", http.StatusOK)
}

// UploadAttachments accepts a multipart batch under the "files" field and
// always answers with a per-file summary; a partial failure is a 200.
func (c *TicketController) UploadAttachments(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	ticketID := ctx.Param("id")

	form, err := ctx.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid multipart form", err, nil),
			c.logger,
		)
	}
	files := form.File["files"]
	if len(files) == 0 {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "no files provided", apperrors.ErrBadRequest, nil),
			c.logger,
		)
	}

	summary, err := c.ticketService.UploadAttachments(reqCtx, ticketID, files)
	if err != nil {
		return utils.ErrorResponse(ctx, platformError(err), c.logger)
	}

	return utils.SuccessResponse(ctx, summary, summary.Summary, http.StatusOK)
}

package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"asset-console/internal/catalog"
	"asset-console/internal/dto"
	"asset-console/internal/entities"
	"asset-console/internal/priority"
	"asset-console/internal/ticketdraft"
	apperrors "asset-console/pkg/errors"
	"asset-console/pkg/filestorage"
	"asset-console/pkg/validation"

	"go.uber.org/zap"
)

type ticketAPI interface {
	GetAsset(ctx context.Context, assetID string) (*entities.Asset, error)
	ListSLAPolicies(ctx context.Context) ([]entities.SLAPolicy, error)
	GetTicket(ctx context.Context, ticketID string) (*entities.Ticket, error)
	CreateTicket(ctx context.Context, draft ticketdraft.Draft) (*entities.Ticket, error)
	UploadTicketAttachment(ctx context.Context, ticketID, fileName string, file io.Reader) error
}

// Ticket statuses the platform still accepts edits for. A ticket past this
// window renders an explanatory error, never a broken form.
var editableTicketStatuses = map[string]struct{}{
	"Open":       {},
	"OnHold":     {},
	"Reopened":   {},
	"InProgress": {},
}

type TicketServiceInterface interface {
	PreviewPriority(ctx context.Context, req dto.PriorityPreviewRequestDTO) (*dto.PriorityPreviewDTO, error)
	CreateTicket(ctx context.Context, draft ticketdraft.Draft) (*dto.CreateTicketResultDTO, error)
	GetTicketForEdit(ctx context.Context, ticketID string) (*ticketdraft.Form, error)
	UploadAttachments(ctx context.Context, ticketID string, files []*multipart.FileHeader) (*dto.UploadSummaryDTO, error)
}

type TicketService struct {
	api     ticketAPI
	storage filestorage.FileStorageInterface
	logger  *zap.Logger
	now     func() time.Time
}

func NewTicketService(api ticketAPI, storage filestorage.FileStorageInterface, logger *zap.Logger) TicketServiceInterface {
	return &TicketService{api: api, storage: storage, logger: logger, now: time.Now}
}

// PreviewPriority recomputes the tier and SLA targets. A missing or
// unreadable asset degrades to the default criticality instead of failing
// the preview.
func (s *TicketService) PreviewPriority(ctx context.Context, req dto.PriorityPreviewRequestDTO) (*dto.PriorityPreviewDTO, error) {
	criticality := catalog.DefaultCriticality
	if req.AssetID != "" {
		asset, err := s.api.GetAsset(ctx, req.AssetID)
		if err != nil {
			s.logger.Warn("priority preview: asset lookup failed, using default criticality",
				zap.String("assetID", req.AssetID),
				zap.Error(err),
			)
		} else if asset.Criticality.Valid {
			criticality = catalog.NormalizeCriticality(int(asset.Criticality.Int))
		}
	}

	policies, err := s.api.ListSLAPolicies(ctx)
	if err != nil {
		// Targets stay absent when the policy list cannot be loaded;
		// the score itself is still worth showing.
		s.logger.Warn("priority preview: policy list unavailable", zap.Error(err))
		policies = nil
	}

	score := priority.Score(req.Impact, req.Urgency, criticality)
	tier := priority.TierFor(score)
	return &dto.PriorityPreviewDTO{
		Score:   score,
		Tier:    tier,
		Targets: priority.TargetsFor(tier, policies, s.now()),
	}, nil
}

func (s *TicketService) CreateTicket(ctx context.Context, draft ticketdraft.Draft) (*dto.CreateTicketResultDTO, error) {
	if err := ticketdraft.ValidateDraft(draft); err != nil {
		return nil, err
	}

	preview, err := s.PreviewPriority(ctx, dto.PriorityPreviewRequestDTO{
		Impact:  draft.Impact,
		Urgency: draft.Urgency,
		AssetID: draft.AssetID,
	})
	if err != nil {
		return nil, err
	}

	ticket, err := s.api.CreateTicket(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ticket created",
		zap.String("ticketID", ticket.ID),
		zap.String("tier", preview.Tier),
	)
	return &dto.CreateTicketResultDTO{Ticket: *ticket, Priority: *preview}, nil
}

// GetTicketForEdit fetches the ticket, verifies it is still inside the
// editable window and returns a hydrated form ready for interaction.
func (s *TicketService) GetTicketForEdit(ctx context.Context, ticketID string) (*ticketdraft.Form, error) {
	ticket, err := s.api.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if _, editable := editableTicketStatuses[ticket.Status]; !editable {
		return nil, apperrors.NewHttpError(
			http.StatusConflict,
			fmt.Sprintf("ticket %s can no longer be edited: its workflow has moved to '%s'", ticketID, ticket.Status),
			nil,
			map[string]interface{}{"status": ticket.Status},
		)
	}

	form := ticketdraft.NewFormFromTicket(*ticket)
	form.FinishHydration()
	return form, nil
}

// UploadAttachments runs the sequential per-file loop. Each file is
// validated, staged locally and handed to the platform; one failure never
// aborts the batch, the caller gets an N-succeeded/M-failed summary.
func (s *TicketService) UploadAttachments(ctx context.Context, ticketID string, files []*multipart.FileHeader) (*dto.UploadSummaryDTO, error) {
	summary := &dto.UploadSummaryDTO{}

	for _, fileHeader := range files {
		if err := s.uploadOne(ctx, ticketID, fileHeader); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", fileHeader.Filename, err))
			s.logger.Warn("attachment upload failed",
				zap.String("ticketID", ticketID),
				zap.String("file", fileHeader.Filename),
				zap.Error(err),
			)
			continue
		}
		summary.Succeeded++
	}

	summary.Summary = fmt.Sprintf("%d succeeded, %d failed", summary.Succeeded, summary.Failed)
	return summary, nil
}

func (s *TicketService) uploadOne(ctx context.Context, ticketID string, fileHeader *multipart.FileHeader) error {
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := validation.ValidateFile(fileHeader, src, "ticket_attachment"); err != nil {
		return err
	}

	// Stage a local copy first; a failed forward keeps the staged file
	// around for retry.
	stagedPath, err := s.storage.Save(src, fileHeader.Filename, "tickets/"+ticketID)
	if err != nil {
		return err
	}

	upload, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer upload.Close()

	if err := s.api.UploadTicketAttachment(ctx, ticketID, fileHeader.Filename, upload); err != nil {
		return err
	}

	_ = s.storage.Delete("/uploads/" + stagedPath)
	return nil
}

package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-console/internal/dto"
	"asset-console/internal/entities"
	"asset-console/internal/ticketdraft"
	apperrors "asset-console/pkg/errors"
)

type fakeTicketAPI struct {
	asset      *entities.Asset
	assetErr   error
	policies   []entities.SLAPolicy
	policyErr  error
	ticket     *entities.Ticket
	ticketErr  error
	created    *entities.Ticket
	createErr  error
	uploadErrs map[string]error
	uploaded   []string
}

func (f *fakeTicketAPI) GetAsset(ctx context.Context, assetID string) (*entities.Asset, error) {
	if f.assetErr != nil {
		return nil, f.assetErr
	}
	return f.asset, nil
}

func (f *fakeTicketAPI) ListSLAPolicies(ctx context.Context) ([]entities.SLAPolicy, error) {
	if f.policyErr != nil {
		return nil, f.policyErr
	}
	return f.policies, nil
}

func (f *fakeTicketAPI) GetTicket(ctx context.Context, ticketID string) (*entities.Ticket, error) {
	if f.ticketErr != nil {
		return nil, f.ticketErr
	}
	return f.ticket, nil
}

func (f *fakeTicketAPI) CreateTicket(ctx context.Context, draft ticketdraft.Draft) (*entities.Ticket, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeTicketAPI) UploadTicketAttachment(ctx context.Context, ticketID, fileName string, file io.Reader) error {
	if err, ok := f.uploadErrs[fileName]; ok {
		return err
	}
	f.uploaded = append(f.uploaded, fileName)
	return nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeStorage) Save(file io.Reader, originalFileName, prefix string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	path := prefix + "/" + originalFileName
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeStorage) Delete(filePath string) error {
	f.deleted = append(f.deleted, filePath)
	return nil
}

// pngBytes is a minimal payload whose sniffed MIME type is image/png.
func pngBytes() []byte {
	return append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 32)...)
}

func makeFileHeaders(t *testing.T, files map[string][]byte) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["files"]
}

func validDraft() ticketdraft.Draft {
	return ticketdraft.Draft{
		SiteID:      "hq",
		Category:    "Hardware",
		Title:       "Switch port flapping",
		Description: "Port 12 on the core switch keeps dropping link.",
		Impact:      4,
		Urgency:     5,
	}
}

func TestTicketService_PreviewPriority_UsesAssetCriticality(t *testing.T) {
	api := &fakeTicketAPI{
		asset: &entities.Asset{ID: "a1", Criticality: null.IntFrom(3)},
		policies: []entities.SLAPolicy{
			{Tier: "P1", ResponseMinutes: 15, RestoreMinutes: 240},
		},
	}
	svc := NewTicketService(api, &fakeStorage{}, zap.NewNop())

	preview, err := svc.PreviewPriority(context.Background(), dto.PriorityPreviewRequestDTO{
		Impact: 4, Urgency: 5, AssetID: "a1",
	})
	require.NoError(t, err)
	assert.Equal(t, 60, preview.Score)
	assert.Equal(t, "P1", preview.Tier)
	require.NotNil(t, preview.Targets.ResponseTarget)
	require.NotNil(t, preview.Targets.ResolutionTarget)
}

func TestTicketService_PreviewPriority_AssetFailureFallsBackToDefault(t *testing.T) {
	api := &fakeTicketAPI{assetErr: errors.New("asset service down")}
	svc := NewTicketService(api, &fakeStorage{}, zap.NewNop())

	preview, err := svc.PreviewPriority(context.Background(), dto.PriorityPreviewRequestDTO{
		Impact: 4, Urgency: 5, AssetID: "a1",
	})
	require.NoError(t, err)
	assert.Equal(t, 40, preview.Score)
	assert.Equal(t, "P2", preview.Tier)
}

func TestTicketService_PreviewPriority_MissingPolicyIsNotAnError(t *testing.T) {
	api := &fakeTicketAPI{policyErr: errors.New("policy list unavailable")}
	svc := NewTicketService(api, &fakeStorage{}, zap.NewNop())

	preview, err := svc.PreviewPriority(context.Background(), dto.PriorityPreviewRequestDTO{
		Impact: 2, Urgency: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, preview.Score)
	assert.Equal(t, "P4", preview.Tier)
	assert.Nil(t, preview.Targets.ResponseTarget)
	assert.Nil(t, preview.Targets.ResolutionTarget)
}

func TestTicketService_CreateTicket(t *testing.T) {
	api := &fakeTicketAPI{
		created: &entities.Ticket{ID: "T-100", Title: "Switch port flapping"},
	}
	svc := NewTicketService(api, &fakeStorage{}, zap.NewNop())

	result, err := svc.CreateTicket(context.Background(), validDraft())
	require.NoError(t, err)
	assert.Equal(t, "T-100", result.Ticket.ID)
	assert.Equal(t, "P2", result.Priority.Tier)
}

func TestTicketService_CreateTicket_RejectsInvalidDraft(t *testing.T) {
	svc := NewTicketService(&fakeTicketAPI{}, &fakeStorage{}, zap.NewNop())

	draft := validDraft()
	draft.Title = "ab"
	_, err := svc.CreateTicket(context.Background(), draft)
	require.Error(t, err)
}

func TestTicketService_GetTicketForEdit(t *testing.T) {
	api := &fakeTicketAPI{
		ticket: &entities.Ticket{
			ID:     "T-1",
			SiteID: "hq",
			Status: "Open",
			Title:  "Broken scanner",
		},
	}
	svc := NewTicketService(api, &fakeStorage{}, zap.NewNop())

	form, err := svc.GetTicketForEdit(context.Background(), "T-1")
	require.NoError(t, err)
	assert.Equal(t, ticketdraft.Interactive, form.Phase())
	assert.Equal(t, "hq", form.Draft().SiteID)
}

func TestTicketService_GetTicketForEdit_ClosedWindow(t *testing.T) {
	api := &fakeTicketAPI{
		ticket: &entities.Ticket{ID: "T-2", Status: "Closed"},
	}
	svc := NewTicketService(api, &fakeStorage{}, zap.NewNop())

	_, err := svc.GetTicketForEdit(context.Background(), "T-2")
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Code)
	assert.Contains(t, httpErr.Message, "can no longer be edited")
}

func TestTicketService_UploadAttachments_PartialFailure(t *testing.T) {
	api := &fakeTicketAPI{
		uploadErrs: map[string]error{"bad.png": errors.New("rejected by platform")},
	}
	storage := &fakeStorage{}
	svc := NewTicketService(api, storage, zap.NewNop())

	headers := makeFileHeaders(t, map[string][]byte{
		"good.png": pngBytes(),
		"bad.png":  pngBytes(),
	})

	summary, err := svc.UploadAttachments(context.Background(), "T-9", headers)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, "1 succeeded, 1 failed", summary.Summary)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "bad.png")

	assert.Equal(t, []string{"good.png"}, api.uploaded)
	assert.Equal(t, []string{"/uploads/tickets/T-9/good.png"}, storage.deleted)
}

func TestTicketService_UploadAttachments_RejectsDisallowedType(t *testing.T) {
	api := &fakeTicketAPI{}
	svc := NewTicketService(api, &fakeStorage{}, zap.NewNop())

	headers := makeFileHeaders(t, map[string][]byte{
		"payload.bin": append([]byte{0x00, 0x01, 0x02, 0x03}, make([]byte, 16)...),
	})

	summary, err := svc.UploadAttachments(context.Background(), "T-9", headers)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Empty(t, api.uploaded)
}

func TestTicketService_CreateTicketResultMatchesPreview(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	api := &fakeTicketAPI{
		created: &entities.Ticket{ID: "T-11"},
		policies: []entities.SLAPolicy{
			{Tier: "P2", ResponseMinutes: 60, RestoreMinutes: 480},
		},
	}
	svc := &TicketService{api: api, storage: &fakeStorage{}, logger: zap.NewNop(), now: func() time.Time { return now }}

	result, err := svc.CreateTicket(context.Background(), validDraft())
	require.NoError(t, err)
	require.NotNil(t, result.Priority.Targets.ResponseTarget)
	assert.Equal(t, now.Add(time.Hour), *result.Priority.Targets.ResponseTarget)
	assert.Equal(t, now.Add(8*time.Hour), *result.Priority.Targets.ResolutionTarget)
}

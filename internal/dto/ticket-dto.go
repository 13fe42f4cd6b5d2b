package dto

import (
	"asset-console/internal/entities"
	"asset-console/internal/priority"
)

// PriorityPreviewDTO is recomputed whenever impact, urgency, the selected
// asset or the policy list changes.
type PriorityPreviewDTO struct {
	Score   int                 `json:"score"`
	Tier    string              `json:"tier"`
	Targets priority.SLATargets `json:"targets"`
}

type PriorityPreviewRequestDTO struct {
	Impact  int    `json:"impact" validate:"required,impact_level"`
	Urgency int    `json:"urgency" validate:"required,urgency_level"`
	AssetID string `json:"asset_id,omitempty"`
}

type CreateTicketResultDTO struct {
	Ticket   entities.Ticket    `json:"ticket"`
	Priority PriorityPreviewDTO `json:"priority"`
}

// UploadSummaryDTO reports a partial-batch outcome; failures are counted and
// surfaced, never silently dropped.
type UploadSummaryDTO struct {
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
	Summary   string   `json:"summary"`
}

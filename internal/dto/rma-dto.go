package dto

import (
	"asset-console/internal/catalog"
	"asset-console/internal/entities"
	"asset-console/internal/timeline"
)

type RmaItemDTO struct {
	entities.RmaRecord
	StatusMeta      catalog.StatusMeta     `json:"status_meta"`
	TimelinePreview []timeline.PreviewStep `json:"timeline_preview"`
}

// RmaListDTO partitions the filtered records for the two-tab RMA screen.
type RmaListDTO struct {
	Ongoing           []RmaItemDTO `json:"ongoing"`
	Completed         []RmaItemDTO `json:"completed"`
	ActiveFilterCount int          `json:"active_filter_count"`
}

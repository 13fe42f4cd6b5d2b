package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type TimelineStep struct {
	Status    string      `json:"status"`
	ChangedBy null.String `json:"changed_by"`
	Timestamp time.Time   `json:"timestamp"`
}

// RmaRecord is read-only in this layer; every transition happens on the
// platform side.
type RmaRecord struct {
	ID                 string         `json:"id"`
	TicketRef          string         `json:"ticket_ref"`
	OriginalAsset      AssetSnapshot  `json:"original_asset"`
	ReplacementDetails *AssetSnapshot `json:"replacement_details,omitempty"`
	Status             string         `json:"status"`
	RequestReason      string         `json:"request_reason"`
	ReplacementSource  string         `json:"replacement_source"`
	InstallationStatus string         `json:"installation_status"`
	FaultyItemAction   string         `json:"faulty_item_action"`
	Timeline           []TimelineStep `json:"timeline"`
	CreatedAt          time.Time      `json:"created_at"`
	SiteID             string         `json:"site_id"`
}

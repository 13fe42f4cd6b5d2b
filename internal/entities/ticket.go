package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Ticket struct {
	ID           string      `json:"id"`
	SiteID       string      `json:"site_id"`
	LocationName null.String `json:"location_name"`
	AssetType    null.String `json:"asset_type"`
	DeviceType   null.String `json:"device_type"`
	AssetID      null.String `json:"asset_id"`
	Category     string      `json:"category"`
	SubCategory  null.String `json:"sub_category"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Impact       int         `json:"impact"`
	Urgency      int         `json:"urgency"`
	Priority     string      `json:"priority"`
	Status       string      `json:"status"`
	AssignedTo   null.String `json:"assigned_to"`
	Tags         []string    `json:"tags"`
	CreatedAt    time.Time   `json:"created_at"`
}

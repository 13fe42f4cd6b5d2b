package entities

import "github.com/aarondl/null/v8"

type Asset struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serial_number"`
	AssetType    string      `json:"asset_type"`
	DeviceType   string      `json:"device_type"`
	Status       string      `json:"status"`
	Criticality  null.Int    `json:"criticality"`
	SiteID       string      `json:"site_id"`
	LocationName null.String `json:"location_name"`
}

// AssetSnapshot is the frozen before/after device state carried on an RMA.
type AssetSnapshot struct {
	AssetID      string      `json:"asset_id"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serial_number"`
	DeviceType   string      `json:"device_type"`
	LocationName null.String `json:"location_name"`
}

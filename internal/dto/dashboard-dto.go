package dto

import (
	"time"

	"asset-console/internal/entities"
)

// DashboardDTO bundles the concurrently loaded screen data. Each leg fails
// independently; a nil Stats means the last fetch failed and the previous
// snapshot (if any) is served instead.
type DashboardDTO struct {
	Stats     *entities.DashboardStats `json:"stats"`
	Sites     []entities.Site          `json:"sites"`
	Engineers []entities.User          `json:"engineers"`
	FetchedAt time.Time                `json:"fetched_at"`
}

package dto

import "asset-console/internal/entities"

// UpdateRightsDTO replaces the rights set for exactly one scope.
type UpdateRightsDTO struct {
	Rights []string `json:"rights" validate:"required,dive,permission_code"`
	Scope  string   `json:"scope" validate:"required,scope_id"`
}

// UserRightsItemDTO is one row of the rights management screen.
type UserRightsItemDTO struct {
	User         entities.User         `json:"user"`
	GlobalRights []string              `json:"global_rights"`
	SiteRights   []entities.SiteRights `json:"site_rights"`
	TotalRights  int                   `json:"total_rights"`
	HasRights    bool                  `json:"has_rights"`
}

type UserRightsListDTO struct {
	Items             []UserRightsItemDTO `json:"items"`
	ActiveFilterCount int                 `json:"active_filter_count"`
}

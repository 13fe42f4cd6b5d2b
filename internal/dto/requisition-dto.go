package dto

import "asset-console/internal/entities"

type RequisitionListDTO struct {
	Items             []entities.Requisition `json:"items"`
	ActiveFilterCount int                    `json:"active_filter_count"`
}

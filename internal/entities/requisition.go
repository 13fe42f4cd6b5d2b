package entities

import "github.com/aarondl/null/v8"

const (
	RequisitionTypeStockRequest     = "StockRequest"
	RequisitionTypeRMATransfer      = "RMATransfer"
	RequisitionTypeRepairedItemXfer = "RepairedItemTransfer"

	RequisitionStatusPending   = "Pending"
	RequisitionStatusApproved  = "Approved"
	RequisitionStatusInTransit = "InTransit"
	RequisitionStatusFulfilled = "Fulfilled"
	RequisitionStatusRejected  = "Rejected"

	TransferDirectionToSite     = "ToSite"
	TransferDirectionToHO       = "ToHO"
	TransferDirectionSiteToSite = "SiteToSite"
	TransferDirectionNone       = "None"
)

// Requisition moves stock between locations. TransferDirection only carries
// meaning when the type is not a plain StockRequest.
type Requisition struct {
	ID                string      `json:"id"`
	RequisitionType   string      `json:"requisition_type"`
	Status            string      `json:"status"`
	TransferDirection string      `json:"transfer_direction"`
	SourceSite        string      `json:"source_site"`
	DestinationSite   string      `json:"destination_site"`
	AssetRef          null.String `json:"asset_ref"`
	RMARef            null.String `json:"rma_ref"`
	TicketRef         null.String `json:"ticket_ref"`
	Quantity          int         `json:"quantity"`
}

package services

import (
	"context"

	"asset-console/internal/dto"
	"asset-console/internal/entities"
	"asset-console/internal/listkit"
	"asset-console/internal/platform"
	"asset-console/pkg/types"

	"go.uber.org/zap"
)

type requisitionAPI interface {
	ListRequisitions(ctx context.Context) ([]entities.Requisition, *platform.Pagination, error)
}

type RequisitionServiceInterface interface {
	GetRequisitions(ctx context.Context, filter types.Filter) (*dto.RequisitionListDTO, *platform.Pagination, error)
}

type RequisitionService struct {
	api    requisitionAPI
	engine *listkit.Engine[entities.Requisition]
	logger *zap.Logger
}

func NewRequisitionService(api requisitionAPI, logger *zap.Logger) RequisitionServiceInterface {
	return &RequisitionService{api: api, engine: newRequisitionEngine(), logger: logger}
}

func newRequisitionEngine() *listkit.Engine[entities.Requisition] {
	return &listkit.Engine[entities.Requisition]{
		SearchFields: func(r entities.Requisition) []string {
			return []string{r.ID, r.TicketRef.String, r.RMARef.String, r.SourceSite, r.DestinationSite}
		},
		Fields: map[string]func(entities.Requisition) string{
			"type":   func(r entities.Requisition) string { return r.RequisitionType },
			"status": func(r entities.Requisition) string { return r.Status },
			"direction": func(r entities.Requisition) string {
				// Direction only means something for transfers.
				if r.RequisitionType == entities.RequisitionTypeStockRequest {
					return entities.TransferDirectionNone
				}
				return r.TransferDirection
			},
			"source":      func(r entities.Requisition) string { return r.SourceSite },
			"destination": func(r entities.Requisition) string { return r.DestinationSite },
		},
		Sorters: map[string]func(a, b entities.Requisition) int{
			"id-asc": func(a, b entities.Requisition) int {
				return listkit.CompareStrings(a.ID, b.ID)
			},
			"quantity-desc": func(a, b entities.Requisition) int {
				return b.Quantity - a.Quantity
			},
		},
		DefaultSort: "id-asc",
	}
}

func (s *RequisitionService) GetRequisitions(ctx context.Context, filter types.Filter) (*dto.RequisitionListDTO, *platform.Pagination, error) {
	records, pagination, err := s.api.ListRequisitions(ctx)
	if err != nil {
		return nil, nil, err
	}

	query := listkit.Query{
		Search:  filter.Search,
		Filters: filter.Filter,
		SortKey: filter.Sort,
	}
	return &dto.RequisitionListDTO{
		Items:             s.engine.Apply(records, query),
		ActiveFilterCount: listkit.ActiveFilterCount(query),
	}, pagination, nil
}

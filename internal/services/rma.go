package services

import (
	"context"

	"asset-console/internal/catalog"
	"asset-console/internal/dto"
	"asset-console/internal/entities"
	"asset-console/internal/listkit"
	"asset-console/internal/platform"
	"asset-console/internal/timeline"
	"asset-console/pkg/types"

	"go.uber.org/zap"
)

type rmaAPI interface {
	ListRMARecords(ctx context.Context) ([]entities.RmaRecord, *platform.Pagination, error)
}

type RmaServiceInterface interface {
	GetRmaRecords(ctx context.Context, filter types.Filter) (*dto.RmaListDTO, error)
	GetFilteredRecords(ctx context.Context, filter types.Filter) ([]entities.RmaRecord, error)
}

type RmaService struct {
	api    rmaAPI
	engine *listkit.Engine[entities.RmaRecord]
	logger *zap.Logger
}

func NewRmaService(api rmaAPI, logger *zap.Logger) RmaServiceInterface {
	return &RmaService{api: api, engine: newRmaEngine(), logger: logger}
}

func newRmaEngine() *listkit.Engine[entities.RmaRecord] {
	return &listkit.Engine[entities.RmaRecord]{
		SearchFields: func(r entities.RmaRecord) []string {
			return []string{r.TicketRef, r.OriginalAsset.SerialNumber, r.SiteID}
		},
		Fields: map[string]func(entities.RmaRecord) string{
			"status": func(r entities.RmaRecord) string { return r.Status },
			"site":   func(r entities.RmaRecord) string { return r.SiteID },
			"source": func(r entities.RmaRecord) string { return r.ReplacementSource },
			"phase": func(r entities.RmaRecord) string {
				if timeline.IsCompleted(r.Status) {
					return "completed"
				}
				return "ongoing"
			},
		},
		Sorters: map[string]func(a, b entities.RmaRecord) int{
			"created-desc": func(a, b entities.RmaRecord) int {
				switch {
				case a.CreatedAt.After(b.CreatedAt):
					return -1
				case a.CreatedAt.Before(b.CreatedAt):
					return 1
				default:
					return 0
				}
			},
			"ticket-asc": func(a, b entities.RmaRecord) int {
				return listkit.CompareStrings(a.TicketRef, b.TicketRef)
			},
		},
		DefaultSort: "created-desc",
	}
}

// GetFilteredRecords returns the filtered, sorted RMA list without the
// display decoration; the export flow reuses it.
func (s *RmaService) GetFilteredRecords(ctx context.Context, filter types.Filter) ([]entities.RmaRecord, error) {
	records, _, err := s.api.ListRMARecords(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Apply(records, listkit.Query{
		Search:  filter.Search,
		Filters: filter.Filter,
		SortKey: filter.Sort,
	}), nil
}

func (s *RmaService) GetRmaRecords(ctx context.Context, filter types.Filter) (*dto.RmaListDTO, error) {
	filtered, err := s.GetFilteredRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	parts := timeline.PartitionRecords(filtered)
	return &dto.RmaListDTO{
		Ongoing:   decorate(parts.Ongoing),
		Completed: decorate(parts.Completed),
		ActiveFilterCount: listkit.ActiveFilterCount(listkit.Query{
			Search:  filter.Search,
			Filters: filter.Filter,
			SortKey: filter.Sort,
		}),
	}, nil
}

func decorate(records []entities.RmaRecord) []dto.RmaItemDTO {
	items := make([]dto.RmaItemDTO, 0, len(records))
	for _, r := range records {
		items = append(items, dto.RmaItemDTO{
			RmaRecord:       r,
			StatusMeta:      catalog.LabelFor(r.Status),
			TimelinePreview: timeline.Preview(r.Timeline, timeline.DefaultPreviewSize),
		})
	}
	return items
}

package services

import (
	"context"

	"asset-console/internal/dto"
	"asset-console/internal/entities"
	"asset-console/internal/listkit"
	"asset-console/internal/rights"
	"asset-console/internal/session"
	apperrors "asset-console/pkg/errors"
	"asset-console/pkg/types"

	"go.uber.org/zap"
)

type rightsAPI interface {
	ListUserRights(ctx context.Context) ([]entities.UserRightsRecord, error)
	UpdateRights(ctx context.Context, userID int, rightsList []string, scopeID string) error
}

type UserRightsServiceInterface interface {
	GetUserRights(ctx context.Context, filter types.Filter) (*dto.UserRightsListDTO, error)
	UpdateUserRights(ctx context.Context, userID int, updateDTO dto.UpdateRightsDTO, sessionUserID int) error
}

type UserRightsService struct {
	api     rightsAPI
	session *session.Store
	engine  *listkit.Engine[entities.UserRightsRecord]
	logger  *zap.Logger
}

func NewUserRightsService(api rightsAPI, sessionStore *session.Store, logger *zap.Logger) UserRightsServiceInterface {
	return &UserRightsService{
		api:     api,
		session: sessionStore,
		engine:  newRightsEngine(),
		logger:  logger,
	}
}

func newRightsEngine() *listkit.Engine[entities.UserRightsRecord] {
	return &listkit.Engine[entities.UserRightsRecord]{
		SearchFields: func(r entities.UserRightsRecord) []string {
			return []string{r.User.FullName, r.User.Email, r.User.Role}
		},
		Fields: map[string]func(entities.UserRightsRecord) string{
			"role": func(r entities.UserRightsRecord) string { return r.User.Role },
			"site": func(r entities.UserRightsRecord) string { return r.User.SiteID.String },
			"rights": func(r entities.UserRightsRecord) string {
				if r.HasAnyRights() {
					return "has-rights"
				}
				return "no-rights"
			},
		},
		Sorters: map[string]func(a, b entities.UserRightsRecord) int{
			"name-asc": func(a, b entities.UserRightsRecord) int {
				return listkit.CompareStrings(a.User.FullName, b.User.FullName)
			},
			"name-desc": func(a, b entities.UserRightsRecord) int {
				return listkit.CompareStrings(b.User.FullName, a.User.FullName)
			},
			"most-rights": func(a, b entities.UserRightsRecord) int {
				return b.TotalRights() - a.TotalRights()
			},
			"least-rights": func(a, b entities.UserRightsRecord) int {
				return a.TotalRights() - b.TotalRights()
			},
		},
		DefaultSort: "name-asc",
	}
}

func (s *UserRightsService) GetUserRights(ctx context.Context, filter types.Filter) (*dto.UserRightsListDTO, error) {
	records, err := s.api.ListUserRights(ctx)
	if err != nil {
		return nil, err
	}

	query := listkit.Query{
		Search:  filter.Search,
		Filters: filter.Filter,
		SortKey: filter.Sort,
	}
	filtered := s.engine.Apply(records, query)

	items := make([]dto.UserRightsItemDTO, 0, len(filtered))
	for _, r := range filtered {
		items = append(items, dto.UserRightsItemDTO{
			User:         r.User,
			GlobalRights: r.GlobalRights,
			SiteRights:   r.SiteRights,
			TotalRights:  r.TotalRights(),
			HasRights:    r.HasAnyRights(),
		})
	}

	return &dto.UserRightsListDTO{
		Items:             items,
		ActiveFilterCount: listkit.ActiveFilterCount(query),
	}, nil
}

// UpdateUserRights runs the editor flow for one (user, scope): load the
// current record, switch to the requested scope, toggle the working copy
// into the requested set and save. The editor mirrors the change into the
// session cache when the edited user is the caller.
func (s *UserRightsService) UpdateUserRights(ctx context.Context, userID int, updateDTO dto.UpdateRightsDTO, sessionUserID int) error {
	records, err := s.api.ListUserRights(ctx)
	if err != nil {
		return err
	}

	var target *entities.UserRightsRecord
	for i := range records {
		if records[i].User.ID == userID {
			target = &records[i]
			break
		}
	}
	if target == nil {
		return apperrors.ErrUserNotFound
	}

	editor := rights.NewEditor(s.api, s.session, sessionUserID)
	editor.SelectUser(target)
	editor.SelectScope(updateDTO.Scope)

	want := make(map[string]struct{}, len(updateDTO.Rights))
	for _, code := range updateDTO.Rights {
		want[code] = struct{}{}
	}
	for _, code := range editor.EditedRights() {
		if _, keep := want[code]; !keep {
			editor.ToggleRight(code)
		}
	}
	for code := range want {
		if !editor.HasRight(code) {
			editor.ToggleRight(code)
		}
	}

	if err := editor.Save(ctx); err != nil {
		s.logger.Warn("rights save failed",
			zap.Int("userID", userID),
			zap.String("scope", updateDTO.Scope),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("rights updated",
		zap.Int("userID", userID),
		zap.String("scope", updateDTO.Scope),
		zap.Int("rightsCount", len(updateDTO.Rights)),
	)
	return nil
}

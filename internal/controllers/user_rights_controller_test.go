package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-console/internal/dto"
	"asset-console/internal/platform"
	"asset-console/pkg/contextkeys"
	"asset-console/pkg/customvalidator"
	"asset-console/pkg/types"
	"asset-console/pkg/utils"
)

type fakeRightsService struct {
	list      *dto.UserRightsListDTO
	listErr   error
	updateErr error

	updatedUserID   int
	updatedDTO      dto.UpdateRightsDTO
	sessionUserID   int
	updateWasCalled bool
}

func (f *fakeRightsService) GetUserRights(ctx context.Context, filter types.Filter) (*dto.UserRightsListDTO, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeRightsService) UpdateUserRights(ctx context.Context, userID int, updateDTO dto.UpdateRightsDTO, sessionUserID int) error {
	f.updateWasCalled = true
	f.updatedUserID = userID
	f.updatedDTO = updateDTO
	f.sessionUserID = sessionUserID
	return f.updateErr
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)
	return e
}

func TestUserRightsController_GetUserRights(t *testing.T) {
	e := newTestEcho(t)
	svc := &fakeRightsService{
		list: &dto.UserRightsListDTO{Items: []dto.UserRightsItemDTO{}, ActiveFilterCount: 2},
	}
	ctrl := NewUserRightsController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/users/rights?filter[role]=engineer&sort=most-rights", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.GetUserRights(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["status"])
}

func TestUserRightsController_UpdateUserRights(t *testing.T) {
	e := newTestEcho(t)
	svc := &fakeRightsService{}
	ctrl := NewUserRightsController(svc, zap.NewNop())

	payload := `{"rights":["MANAGE_TICKETS","VIEW_REPORTS"],"scope":"global"}`
	req := httptest.NewRequest(http.MethodPut, "/api/users/7/rights", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(context.WithValue(req.Context(), contextkeys.UserIDKey, 7))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, ctrl.UpdateUserRights(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.updateWasCalled)
	assert.Equal(t, 7, svc.updatedUserID)
	assert.Equal(t, 7, svc.sessionUserID)
	assert.Equal(t, "global", svc.updatedDTO.Scope)
	assert.ElementsMatch(t, []string{"MANAGE_TICKETS", "VIEW_REPORTS"}, svc.updatedDTO.Rights)
}

func TestUserRightsController_UpdateUserRights_InvalidScope(t *testing.T) {
	e := newTestEcho(t)
	svc := &fakeRightsService{}
	ctrl := NewUserRightsController(svc, zap.NewNop())

	payload := `{"rights":["MANAGE_TICKETS"],"scope":"not a scope!"}`
	req := httptest.NewRequest(http.MethodPut, "/api/users/7/rights", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, ctrl.UpdateUserRights(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, svc.updateWasCalled)
}

func TestUserRightsController_UpdateUserRights_BadID(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewUserRightsController(&fakeRightsService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPut, "/api/users/abc/rights", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, ctrl.UpdateUserRights(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserRightsController_PlatformErrorPassesThrough(t *testing.T) {
	e := newTestEcho(t)
	svc := &fakeRightsService{
		listErr: &platform.APIError{StatusCode: http.StatusConflict, Message: "rights were changed by another admin"},
	}
	ctrl := NewUserRightsController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/users/rights", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.GetUserRights(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "rights were changed by another admin", body["message"])
}

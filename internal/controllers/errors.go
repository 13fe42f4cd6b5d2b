package controllers

import (
	"errors"
	"net/http"

	"asset-console/internal/platform"
	apperrors "asset-console/pkg/errors"
)

// platformError translates an upstream API failure into an HttpError so the
// response funnel renders the platform's status code and message verbatim
// instead of a generic 500.
func platformError(err error) error {
	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.StatusCode
		if code < http.StatusBadRequest {
			code = http.StatusBadGateway
		}
		return apperrors.NewHttpError(code, apiErr.Message, err, nil)
	}
	return err
}

package utils

import (
	"context"

	"asset-console/pkg/contextkeys"
	apperrors "asset-console/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (int, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(int)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetSessionTokenFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(contextkeys.SessionTokenKey).(string)
	return token
}

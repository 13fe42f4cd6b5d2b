package contextkeys

type contextKey string

const (
	UserIDKey          contextKey = "UserID"
	UserPermissionsKey contextKey = "UserPermissions"
	SessionTokenKey    contextKey = "SessionToken"
)

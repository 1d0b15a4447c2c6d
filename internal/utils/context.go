package utils

import "context"

type ctxKey string

const (
	AdminIDKey       ctxKey = "admin_id"
	AdminUsernameKey ctxKey = "admin_username"
)

func WithAdmin(ctx context.Context, id int64, username string) context.Context {
	ctx = context.WithValue(ctx, AdminIDKey, id)
	return context.WithValue(ctx, AdminUsernameKey, username)
}

func GetAdminIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(AdminIDKey).(int64)
	return id, ok
}

func GetAdminUsernameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(AdminUsernameKey).(string)
	return name
}

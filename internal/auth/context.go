package auth

import "context"

type userKey struct{}

// WithUser возвращает контекст с идентификатором текущего пользователя
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// UserID извлекает идентификатор пользователя из контекста
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userKey{}).(string)
	return userID, ok && userID != ""
}

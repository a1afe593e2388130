package cont

import "context"

type ctxKey string

const sessionKey ctxKey = "session"

func PutSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionID)
}

func GetSession(ctx context.Context) string {
	id, ok := ctx.Value(sessionKey).(string)
	if !ok {
		return ""
	}
	return id
}

package api

import (
	"context"
)

type keyType string

const sessionKey keyType = "session"

// ctxWithSession adds an admin session to the context
func ctxWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// ctxGetSession retrieves the admin session from the context, or nil when
// the request is unauthenticated
func ctxGetSession(ctx context.Context) *Session {
	if v := ctx.Value(sessionKey); v != nil {
		if session, ok := v.(*Session); ok {
			return session
		}
	}
	return nil
}

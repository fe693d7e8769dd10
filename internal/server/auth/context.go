package auth

import "context"

type tokenKey struct{}

// WithToken stores the caller's raw access token in ctx. The transport layer
// calls it; the Guard reads it back.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the raw access token, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

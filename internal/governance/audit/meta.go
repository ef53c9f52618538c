package audit

import "context"

type metaKey struct{}

// WithRequestMeta attaches request-scoped metadata (request id, client ip,
// session marker) to the context. Set once by HTTP middleware; every audit
// entry written under that request inherits it.
func WithRequestMeta(ctx context.Context, meta map[string]interface{}) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

// RequestMeta returns the request metadata attached to the context, or nil
// for background callers (jobs, sweeps).
func RequestMeta(ctx context.Context) map[string]interface{} {
	meta, _ := ctx.Value(metaKey{}).(map[string]interface{})
	return meta
}

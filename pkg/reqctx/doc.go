// Package reqctx carries request-scoped metadata from the HTTP middleware
// down to services and log lines.
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{RequestID: rid})
//	rid := reqctx.RequestIDFromContext(ctx)
package reqctx

// Package middleware provides HTTP middleware for the MainGen API.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates X-Request-ID
//   - Logger: structured access log via log/slog
//   - Recovery: converts panics into a 500 problem response
//   - CORS: cross-origin headers, allowing the token header
//   - Compress: gzip for static assets
//   - Auth: resolves the token header to a user email
//   - RateLimit: per-IP token bucket, applied to the auth endpoints
//
// Middlewares compose with Chain:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
//
// # Context Values
//
//   - GetRequestID(ctx): unique request identifier
//   - GetUserEmail(ctx): email of the authenticated caller
package middleware

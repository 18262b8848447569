// Package handler provides HTTP request handlers for the MainGen API.
//
// # Handler Pattern
//
//   - Constructor function (NewXxxHandler) accepts the service it drives
//   - Methods handle specific HTTP endpoints
//   - Request bodies are decoded strictly and validated before the service runs
//   - Service errors are mapped to RFC 9457 Problem Details by MapServiceError
//
// Successful responses are bare JSON documents without an envelope.
//
// # Authentication
//
// Tree endpoints sit behind middleware.Auth, which resolves the token header
// and exposes the caller via middleware.GetUserEmail(ctx).
package handler

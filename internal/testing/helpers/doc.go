// Package helpers provides test utility functions for the MainGen API.
//
// # Request Builder
//
// Build and send requests against any http.Handler:
//
//	resp := helpers.NewRequest(t, http.MethodPost, "/trees").
//	    WithToken(token).
//	    WithBody(map[string]string{"name": "Smith"}).
//	    Do(handler)
//
// # Assertion Helpers
//
//	helpers.AssertStatus(t, resp, http.StatusOK)
//	helpers.AssertProblemDetails(t, resp, http.StatusNotFound, model.ErrCodeNotFound)
//	helpers.AssertValidationError(t, resp, "email")
//
// # Pointer Helpers
//
//	id := helpers.Int64Ptr(7)
package helpers

// Package model defines domain entities and request/response types for the
// MainGen API.
//
// # Domain Entities
//
//   - User: registered account (email + password digest)
//   - Tree: family tree owned by a user
//   - Person: member of one tree
//   - Relationship: parent or spouse link between two persons of a tree
//
// # Request Validation
//
// Request bodies expose Validate() returning field errors, which handlers
// turn into a 422 problem response:
//
//	if errs := req.Validate(); len(errs) > 0 {
//	    WriteError(w, model.NewValidationError(errs))
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go.
package model

package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/forgo/maingen/internal/model"
)

// maxBodyBytes caps request bodies. Every request here is a small JSON object.
const maxBodyBytes = 1 << 20

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	err.WriteJSON(w)
}

// DecodeJSON decodes a JSON request body into the given struct. Unknown
// fields and trailing data are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// invalidBody is the 422 problem for a body that is not the expected JSON
func invalidBody(err error) *model.ProblemDetails {
	return model.NewValidationError([]model.FieldError{
		{Field: "body", Message: bodyErrorMessage(err)},
	})
}

func bodyErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return "request body is required"
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return typeErr.Field + " has the wrong type"
		}
		return "request body must be a JSON object"
	case errors.As(err, &maxErr):
		return "request body too large"
	default:
		return err.Error()
	}
}

// parseTreeID reads the tree_id path value. Any integer is accepted; zero
// and negative IDs simply name no tree.
func parseTreeID(r *http.Request) (int64, *model.ProblemDetails) {
	id, err := strconv.ParseInt(r.PathValue("tree_id"), 10, 64)
	if err != nil {
		return 0, model.NewValidationError([]model.FieldError{
			{Field: "tree_id", Message: "must be an integer"},
		})
	}
	return id, nil
}

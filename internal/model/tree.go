package model

// Tree is a family tree owned by the user who created it
type Tree struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	OwnerEmail string `json:"-"`
}

// CreateTreeRequest represents the tree creation request body. Name is a
// pointer so an absent field can be told apart from an empty one.
type CreateTreeRequest struct {
	Name *string `json:"name"`
}

// Validate checks that a name was sent
func (r *CreateTreeRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name == nil {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	}
	return errors
}

// TreeName returns the requested name, empty when absent
func (r *CreateTreeRequest) TreeName() string {
	if r.Name == nil {
		return ""
	}
	return *r.Name
}

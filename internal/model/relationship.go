package model

// RelationshipType classifies the link between two persons
type RelationshipType string

const (
	RelationshipParent RelationshipType = "parent"
	RelationshipSpouse RelationshipType = "spouse"
)

// IsValid reports whether t is a known relationship type
func (t RelationshipType) IsValid() bool {
	return t == RelationshipParent || t == RelationshipSpouse
}

// Relationship links two persons of a tree. PersonAID and PersonBID are
// not checked against the tree's persons.
type Relationship struct {
	ID        int64            `json:"id"`
	TreeID    int64            `json:"tree_id"`
	PersonAID int64            `json:"person_a_id"`
	PersonBID int64            `json:"person_b_id"`
	Type      RelationshipType `json:"type"`
}

// RelationshipFields holds the caller-supplied attributes of a new relationship
type RelationshipFields struct {
	PersonAID int64
	PersonBID int64
	Type      RelationshipType
}

// CreateRelationshipRequest represents the relationship creation request body
type CreateRelationshipRequest struct {
	PersonAID *int64           `json:"person_a_id"`
	PersonBID *int64           `json:"person_b_id"`
	Type      RelationshipType `json:"type"`
}

// Validate checks required person IDs and the type enum
func (r *CreateRelationshipRequest) Validate() []FieldError {
	var errors []FieldError

	if r.PersonAID == nil {
		errors = append(errors, FieldError{Field: "person_a_id", Message: "person_a_id is required"})
	}
	if r.PersonBID == nil {
		errors = append(errors, FieldError{Field: "person_b_id", Message: "person_b_id is required"})
	}
	if r.Type == "" {
		errors = append(errors, FieldError{Field: "type", Message: "type is required"})
	} else if !r.Type.IsValid() {
		errors = append(errors, FieldError{Field: "type", Message: "type must be parent or spouse"})
	}
	return errors
}

// Fields converts a validated request into store input
func (r *CreateRelationshipRequest) Fields() RelationshipFields {
	var f RelationshipFields
	if r.PersonAID != nil {
		f.PersonAID = *r.PersonAID
	}
	if r.PersonBID != nil {
		f.PersonBID = *r.PersonBID
	}
	f.Type = r.Type
	return f
}

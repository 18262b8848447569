package model

// Gender of a person
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// IsValid reports whether g is one of the known genders
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

// Person is a member of exactly one tree
type Person struct {
	ID        int64  `json:"id"`
	TreeID    int64  `json:"tree_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    Gender `json:"gender"`
	BirthDate *Date  `json:"birth_date"`
}

// PersonFields holds the caller-supplied attributes of a new person
type PersonFields struct {
	FirstName string
	LastName  string
	Gender    Gender
	BirthDate *Date
}

// CreatePersonRequest represents the person creation request body
type CreatePersonRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Gender    Gender  `json:"gender,omitempty"`
	BirthDate *Date   `json:"birth_date,omitempty"`
}

// Validate checks names and the gender enum
func (r *CreatePersonRequest) Validate() []FieldError {
	var errors []FieldError

	if r.FirstName == nil {
		errors = append(errors, FieldError{Field: "first_name", Message: "first_name is required"})
	}
	if r.LastName == nil {
		errors = append(errors, FieldError{Field: "last_name", Message: "last_name is required"})
	}
	if r.Gender != "" && !r.Gender.IsValid() {
		errors = append(errors, FieldError{Field: "gender", Message: "gender must be male, female, or unknown"})
	}
	return errors
}

// Fields converts the request into store input, defaulting gender to unknown
func (r *CreatePersonRequest) Fields() PersonFields {
	gender := r.Gender
	if gender == "" {
		gender = GenderUnknown
	}
	return PersonFields{
		FirstName: deref(r.FirstName),
		LastName:  deref(r.LastName),
		Gender:    gender,
		BirthDate: r.BirthDate,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package model

import (
	"net/mail"
	"strings"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 72 // bcrypt ignores bytes past 72
	MaxEmailLength    = 254
)

// User represents a registered account. The password digest never leaves
// the user store.
type User struct {
	Email string `json:"email"`
	Hash  string `json:"-"`
}

// SignupRequest represents the signup endpoint request body
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks email syntax and password length
func (r *SignupRequest) Validate(minPasswordLength int) []FieldError {
	var errors []FieldError

	if fe := validateEmail(r.Email); fe != nil {
		errors = append(errors, *fe)
	}
	switch {
	case r.Password == "":
		errors = append(errors, FieldError{Field: "password", Message: "password is required"})
	case len(r.Password) < minPasswordLength:
		errors = append(errors, FieldError{Field: "password", Message: "password is too short"})
	case len(r.Password) > MaxPasswordLength:
		errors = append(errors, FieldError{Field: "password", Message: "password must be 72 bytes or less"})
	}
	return errors
}

// SigninRequest represents the signin endpoint request body
type SigninRequest struct {
	Email    string  `json:"email"`
	Password *string `json:"password"`
}

// Validate checks email syntax and password presence. An empty or short
// password is accepted here and fails later as invalid credentials.
func (r *SigninRequest) Validate() []FieldError {
	var errors []FieldError

	if fe := validateEmail(r.Email); fe != nil {
		errors = append(errors, *fe)
	}
	if r.Password == nil {
		errors = append(errors, FieldError{Field: "password", Message: "password is required"})
	}
	return errors
}

// Secret returns the submitted password, empty when absent
func (r *SigninRequest) Secret() string {
	if r.Password == nil {
		return ""
	}
	return *r.Password
}

// TokenResponse is returned by signup and signin
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

func validateEmail(email string) *FieldError {
	if email == "" {
		return &FieldError{Field: "email", Message: "email is required"}
	}
	if !IsValidEmail(email) {
		return &FieldError{Field: "email", Message: "value is not a valid email address"}
	}
	return nil
}

// IsValidEmail reports whether email is a bare address with a dotted domain
func IsValidEmail(email string) bool {
	if len(email) > MaxEmailLength {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return false
	}
	at := strings.LastIndex(email, "@")
	if at < 1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

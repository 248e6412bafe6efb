// Package forms holds the credential forms of the login and registration
// screens. Forms use value semantics: Set returns a new form with exactly one
// field changed, so successive states never alias each other. Validation runs
// locally, before any network call, and fails closed with exactly one error.
package forms

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

// MinPasswordLength is the minimum accepted password length on registration.
const MinPasswordLength = 6

var (
	// ErrMissingField means a required field was left blank.
	ErrMissingField = errors.New("missing required field")
	// ErrPasswordMismatch means password and its confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrPasswordTooShort means the password is shorter than MinPasswordLength.
	ErrPasswordTooShort = errors.New("password too short")
	// ErrUnknownField is returned by Set for a field the form does not have.
	ErrUnknownField = errors.New("unknown field")
)

// Field names accepted by Set.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// LoginForm collects credentials for an existing account.
type LoginForm struct {
	Email    string
	Password string

	// ShowPassword controls whether the password is echoed in clear text.
	// It is pure presentation state and has no effect on validation.
	ShowPassword bool
}

// Set returns a copy of the form with exactly the named field updated.
func (f LoginForm) Set(field, value string) (LoginForm, error) {
	switch field {
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	default:
		return f, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return f, nil
}

// TogglePassword flips password visibility.
func (f LoginForm) TogglePassword() LoginForm {
	f.ShowPassword = !f.ShowPassword
	return f
}

// Validate checks that both fields are present. It returns ErrMissingField
// when either is blank and nil otherwise.
func (f LoginForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
	if err != nil {
		return ErrMissingField
	}
	return nil
}

// RegisterForm collects the fields needed to create a new account.
type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string

	ShowPassword        bool
	ShowConfirmPassword bool
}

// Set returns a copy of the form with exactly the named field updated.
func (f RegisterForm) Set(field, value string) (RegisterForm, error) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	case FieldConfirmPassword:
		f.ConfirmPassword = value
	default:
		return f, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return f, nil
}

// TogglePassword flips password visibility.
func (f RegisterForm) TogglePassword() RegisterForm {
	f.ShowPassword = !f.ShowPassword
	return f
}

// ToggleConfirmPassword flips confirmation password visibility.
func (f RegisterForm) ToggleConfirmPassword() RegisterForm {
	f.ShowConfirmPassword = !f.ShowConfirmPassword
	return f
}

// Validate runs the local checks in the order the UI applies them and stops
// at the first failure:
//
//  1. every field must be present            -> ErrMissingField
//  2. password must equal its confirmation   -> ErrPasswordMismatch
//  3. password must be long enough           -> ErrPasswordTooShort
func (f RegisterForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Email, validation.Required),
		validation.Field(&f.Password, validation.Required),
		validation.Field(&f.ConfirmPassword, validation.Required),
	)
	if err != nil {
		return ErrMissingField
	}

	if err := validation.Validate(f.ConfirmPassword, validation.By(stringEquals(f.Password))); err != nil {
		return ErrPasswordMismatch
	}

	if err := validation.Validate(f.Password, validation.Length(MinPasswordLength, 0)); err != nil {
		return ErrPasswordTooShort
	}
	return nil
}

// stringEquals builds a rule that passes only for an exact match.
func stringEquals(expected string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != expected {
			return errors.New("must match")
		}
		return nil
	}
}

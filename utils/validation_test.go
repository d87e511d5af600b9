package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type registerForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Name     string `validate:"required"`
}

func TestFieldErrorsFromValidator(t *testing.T) {
	v := validator.New()
	err := v.Struct(registerForm{Email: "not-an-email", Password: "short"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	fields := FieldErrors(err)

	if got := fields["email"]; len(got) != 1 || got[0] != "must be a valid email address" {
		t.Errorf("email errors = %v", got)
	}
	if got := fields["password"]; len(got) != 1 || got[0] != "must be at least 8 characters" {
		t.Errorf("password errors = %v", got)
	}
	if got := fields["name"]; len(got) != 1 || got[0] != "this field is required" {
		t.Errorf("name errors = %v", got)
	}
}

func TestFieldErrorsFromNonValidatorError(t *testing.T) {
	fields := FieldErrors(errors.New("unexpected EOF"))

	if got := fields["body"]; len(got) != 1 || got[0] != "invalid request body" {
		t.Errorf("body errors = %v", got)
	}
	if len(fields) != 1 {
		t.Errorf("expected only a body entry, got %v", fields)
	}
}

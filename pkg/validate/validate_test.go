package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/rabbit/pkg/validate"
)

type registerInput struct {
	Name     string  `json:"name"     validate:"required"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role"     validate:"nullable,in=customer,admin"`
	Rating   float64 `json:"ratings"  validate:"nullable,gte=0,lte=5"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "secret123",
		Role:     "customer",
		Rating:   4.5,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestEmailFormat(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:     "Jordan",
		Email:    "not-an-email",
		Password: "secret123",
	})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email format error")
	}
}

func TestMinLength(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "abc",
	})
	if _, ok := errs["password"]; !ok {
		t.Error("expected password min-length error")
	}
}

func TestInRule(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	if _, ok := errs["role"]; !ok {
		t.Error("expected role in-list error")
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "secret123",
		// Role empty: nullable skips the in rule.
	})
	if _, ok := errs["role"]; ok {
		t.Errorf("nullable empty role should pass, got: %v", errs["role"])
	}
}

func TestNumericBounds(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "secret123",
		Rating:   7,
	})
	if _, ok := errs["ratings"]; !ok {
		t.Error("expected ratings lte error")
	}
}

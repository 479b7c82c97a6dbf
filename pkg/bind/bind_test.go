package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/rabbit/pkg/bind"
)

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func post(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestJSONDecodes(t *testing.T) {
	var form loginForm
	errs, err := bind.JSON(post(`{"email":"a@b.com","password":"secret1"}`), &form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs != nil {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if form.Email != "a@b.com" {
		t.Errorf("email = %q, want a@b.com", form.Email)
	}
}

func TestJSONMalformed(t *testing.T) {
	var form loginForm
	if _, err := bind.JSON(post(`{"email":`), &form); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestJSONValidationErrors(t *testing.T) {
	var form loginForm
	errs, err := bind.JSON(post(`{"email":"not-an-email","password":"x"}`), &form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs["email"] == "" || errs["password"] == "" {
		t.Errorf("expected errors for email and password, got %v", errs)
	}
}

// The body size cap comes from the server's MaxBody middleware. JSON itself
// does not impose one; it only rewords the limiter's error.
func TestJSONHonorsUpstreamBodyLimit(t *testing.T) {
	big := `{"email":"` + strings.Repeat("a", 64) + `@b.com","password":"secret1"}`

	req := post(big)
	req.Body = http.MaxBytesReader(nil, req.Body, 16)

	var form loginForm
	_, err := bind.JSON(req, &form)
	if err == nil {
		t.Fatal("expected an error for an over-limit body")
	}
	if !strings.Contains(err.Error(), "request body too large") {
		t.Errorf("error = %q, want it to mention the body limit", err)
	}

	var small loginForm
	if _, err := bind.JSON(post(big), &small); err != nil {
		t.Errorf("same body with no limiter should decode, got %v", err)
	}
}

package auth_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/rabbit/pkg/auth"
)

func TestGenerateAndValidate(t *testing.T) {
	tokens := auth.NewJWT("test-secret")

	token, err := tokens.Generate("user-1", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := auth.NewJWT("secret-a").Generate("user-1", "customer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := auth.NewJWT("secret-b").Validate(token); err == nil {
		t.Error("token signed with another secret should fail")
	}
}

func TestValidateExpired(t *testing.T) {
	tokens := auth.NewJWTWithTTL("test-secret", -time.Minute)

	token, err := tokens.Generate("user-1", "customer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := tokens.Validate(token); err == nil {
		t.Error("expired token should fail validation")
	}
}

func TestValidateGarbage(t *testing.T) {
	if _, err := auth.NewJWT("test-secret").Validate("not.a.token"); err == nil {
		t.Error("garbage token should fail validation")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("Admin123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "Admin123" {
		t.Error("hash must not equal the plain text")
	}

	if !auth.CheckPassword(hash, "Admin123") {
		t.Error("correct password should verify")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("wrong password should not verify")
	}
}

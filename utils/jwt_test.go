package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-round-trip")

	userID := uuid.Must(uuid.NewV7())
	token, err := GenerateJWT(userID, "owner@acme.test", "Ada Stone")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "owner@acme.test" {
		t.Errorf("Email = %s, want owner@acme.test", claims.Email)
	}
	if claims.Issuer != "velos-api" {
		t.Errorf("Issuer = %s, want velos-api", claims.Issuer)
	}
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-round-trip")

	token, err := GenerateJWT(uuid.Must(uuid.NewV7()), "owner@acme.test", "Ada Stone")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ValidateJWT(token + "x"); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateJWT(uuid.Must(uuid.NewV7()), "owner@acme.test", "Ada Stone")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	if _, err := ValidateJWT(token); err == nil {
		t.Error("expected token signed with a different secret to be rejected")
	}
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateJWT(uuid.Must(uuid.NewV7()), "a@b.test", "A"); err == nil {
		t.Error("expected error when JWT_SECRET is unset")
	}
}

package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tm, err := NewTokenManager("test-secret-that-is-long-enough", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	token, err := tm.Generate("user-123", "admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	actor, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if actor.ID != "user-123" || actor.Role != "admin" {
		t.Fatalf("got %+v, want {user-123 admin}", actor)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer, _ := NewTokenManager("secret-one-secret-one-secret-one", time.Hour)
	verifier, _ := NewTokenManager("secret-two-secret-two-secret-two", time.Hour)

	token, err := issuer.Generate("user-123", "user")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	tm, _ := NewTokenManager("test-secret-that-is-long-enough", -time.Minute)

	token, err := tm.Generate("user-123", "user")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := tm.Parse(token); err == nil {
		t.Fatal("expected parse failure for expired token")
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	tm, _ := NewTokenManager("test-secret-that-is-long-enough", time.Hour)
	if _, err := tm.Parse("not-a-token"); err == nil {
		t.Fatal("expected parse failure for garbage input")
	}
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Sup3rSecret!" {
		t.Fatal("password stored in the clear")
	}
	if !VerifyPassword("Sup3rSecret!", hash) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

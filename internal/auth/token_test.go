package auth

import (
	"testing"

	"github.com/jobconnect-app/jobconnect/internal/models"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	account := models.Account{ID: "acc-123", Role: models.RoleRecruiter}

	token, err := MintSessionToken("secret", account)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	accountID, err := ParseSessionToken("secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if accountID != "acc-123" {
		t.Errorf("subject = %q, want acc-123", accountID)
	}
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, err := MintSessionToken("secret", models.Account{ID: "acc-123"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := ParseSessionToken("other", token); err == nil {
		t.Fatal("expected parse to fail with the wrong secret")
	}
}

func TestSessionToken_EmptySecret(t *testing.T) {
	if _, err := ParseSessionToken("", "whatever"); err == nil {
		t.Fatal("expected error with empty secret")
	}
}

func TestSessionToken_FreshPerLogin(t *testing.T) {
	account := models.Account{ID: "acc-123", Role: models.RoleApplicant}
	a, _ := MintSessionToken("secret", account)
	b, _ := MintSessionToken("secret", account)
	if a == b {
		t.Fatal("two logins produced the same token")
	}
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("Recruiter123!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "Recruiter123!") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

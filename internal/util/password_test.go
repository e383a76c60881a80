package util

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "MyPassword123"

	hashed, err := HashPassword(password, 4)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("unexpected hash format: %q", hashed)
	}

	// empty password is rejected
	if _, err := HashPassword("", 4); err == nil {
		t.Error("empty password should return an error")
	}

	// same password must produce different hashes (random salt)
	hashed2, _ := HashPassword(password, 4)
	if hashed == hashed2 {
		t.Error("same password should produce different hashes")
	}
}

func TestHashPassword_CostOutOfRange(t *testing.T) {
	// out-of-range cost falls back to the bcrypt default instead of failing
	hashed, err := HashPassword("MyPassword123", 99)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !CheckPassword("MyPassword123", hashed) {
		t.Error("hash with fallback cost should still verify")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "TestPass456"
	hashed, _ := HashPassword(password, 4)

	if !CheckPassword(password, hashed) {
		t.Error("correct password failed verification")
	}
	if CheckPassword("WrongPass", hashed) {
		t.Error("wrong password should not verify")
	}
	if CheckPassword("", hashed) {
		t.Error("empty password should not verify")
	}
	if CheckPassword(password, "") {
		t.Error("empty hash should not verify")
	}
	if CheckPassword(password, "invalid-format") {
		t.Error("invalid hash format should not verify")
	}
}

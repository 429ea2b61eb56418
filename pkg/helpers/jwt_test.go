package helpers

import (
	"strings"
	"testing"
	"time"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	m := NewJWTManager("test-secret", 30*time.Minute)

	token, exp, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(strings.Split(token, ".")); got != 3 {
		t.Fatalf("expected three-part token, got %d parts", got)
	}
	if until := time.Until(exp); until < 29*time.Minute || until > 30*time.Minute {
		t.Fatalf("expiry not ~30m out: %v", until)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("subject mismatch: got %q", claims.Subject)
	}
}

func TestJWT_ExpiredTokenRejected(t *testing.T) {
	m := NewJWTManager("test-secret", -1*time.Minute)
	token, _, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestJWT_WrongSecretRejected(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Minute)
	verifier := NewJWTManager("secret-b", time.Minute)

	token, _, err := issuer.Generate("user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected token signed with another secret to fail")
	}
}

func TestJWT_TamperedTokenRejected(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)
	token, _, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parts := strings.Split(token, ".")
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	if _, err := m.Parse(strings.Join(parts, ".")); err == nil {
		t.Fatal("expected tampered payload to fail verification")
	}
}

func TestJWT_GarbageRejected(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)
	for _, tok := range []string{"", "abc", "a.b.c"} {
		if _, err := m.Parse(tok); err == nil {
			t.Fatalf("expected garbage token %q to fail", tok)
		}
	}
}

package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	token, err := GenerateToken("s1", "ann@x.com", "frontdesk", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub, role, err := ExtractClaims(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub != "s1" {
		t.Errorf("sub = %q, want s1", sub)
	}
	if role != "frontdesk" {
		t.Errorf("role = %q, want frontdesk", role)
	}
}

func TestTokenTTL(t *testing.T) {
	token, err := GenerateToken("s1", "ann@x.com", "frontdesk", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ttl := TokenTTL(token)
	if ttl <= 50*time.Minute || ttl > time.Hour {
		t.Errorf("ttl = %v, want close to one hour", ttl)
	}

	if got := TokenTTL("not-a-token"); got != 0 {
		t.Errorf("ttl for garbage token = %v, want 0", got)
	}
}

func TestHashTokenIsStableAndOpaque(t *testing.T) {
	a := HashToken("token-a")
	if a != HashToken("token-a") {
		t.Error("hash is not deterministic")
	}
	if a == HashToken("token-b") {
		t.Error("distinct tokens hashed to the same value")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}

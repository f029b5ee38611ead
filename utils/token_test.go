package utils

import (
	"testing"
)

func TestJwtRoundTrip(t *testing.T) {
	token, err := JwtGenerate(42, "biz-1", "Owner")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := JwtValidate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("token not valid")
	}
	claim, ok := parsed.Claims.(*JwtCustomClaim)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	if claim.ID != 42 || claim.BusinessId != "biz-1" || claim.Role != "Owner" {
		t.Errorf("claims = %+v", claim)
	}
}

func TestJwtValidateRejectsGarbage(t *testing.T) {
	if _, err := JwtValidate("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestStatementCacheKey(t *testing.T) {
	got := StatementCacheKey("biz-1", 7, "customer", 3, "2026-01-01", "2026-01-31", "rice")
	want := "Statement:biz-1:7:customer:3:2026-01-01:2026-01-31:rice"
	if got != want {
		t.Errorf("key = %q, want %q", got, want)
	}

	// Empty range/search still yields a distinct, well-formed key.
	got = StatementCacheKey("biz-1", 7, "customer", 3, "", "", "")
	want = "Statement:biz-1:7:customer:3:::"
	if got != want {
		t.Errorf("key = %q, want %q", got, want)
	}
}

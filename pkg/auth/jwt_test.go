package auth_test

import (
	"context"
	"testing"

	"github.com/shashiranjanraj/ridewithme/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("68a1f00000000000000000aa", "jean@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "68a1f00000000000000000aa" || claims.Email != "jean@example.com" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := auth.ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Secret123" {
		t.Fatal("password stored in plain text")
	}
	if !auth.CheckPassword(hash, "Secret123") {
		t.Fatal("correct password rejected")
	}
	if auth.CheckPassword(hash, "Secret124") {
		t.Fatal("wrong password accepted")
	}
}

func TestClaimsContext(t *testing.T) {
	if auth.ClaimsFromCtx(context.Background()) != nil {
		t.Fatal("expected nil claims on bare context")
	}

	c := &auth.Claims{UserID: "u1"}
	ctx := auth.WithClaims(context.Background(), c)
	if got := auth.ClaimsFromCtx(ctx); got == nil || got.UserID != "u1" {
		t.Fatalf("claims = %+v", got)
	}
}

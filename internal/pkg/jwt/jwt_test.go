package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

func TestSignParseRoundTrip(t *testing.T) {
	SetSecret("round-trip-secret")

	token, err := Sign("user-42")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "user-42" {
		t.Fatalf("UserID = %q, want user-42", claims.UserID)
	}
	if claims.Issuer != issuer {
		t.Fatalf("Issuer = %q, want %q", claims.Issuer, issuer)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	SetSecret("secret-one")
	token, err := Sign("user-1")
	if err != nil {
		t.Fatal(err)
	}

	SetSecret("secret-two")
	if _, err := Parse(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	SetSecret("expiry-secret")
	token, err := SignWithTTL("user-1", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

func TestParseRejectsForeignIssuer(t *testing.T) {
	SetSecret("issuer-secret")
	foreign := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		UserID: "user-1",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "somebody-else",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := foreign.SignedString([]byte("issuer-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(token); err == nil {
		t.Fatal("token from another issuer must be rejected")
	}
}

func TestParseRejectsMissingUserID(t *testing.T) {
	SetSecret("uid-secret")
	anonymous := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := anonymous.SignedString([]byte("uid-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(token); err == nil {
		t.Fatal("token without a user id must be rejected")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	SetSecret("garbage-secret")
	if _, err := Parse("not.a.token"); err == nil {
		t.Fatal("garbage must be rejected")
	}
}

package services

import (
	"os"
	"testing"

	"main/utils"
)

func init() {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
}

func TestTokenRoundTrip(t *testing.T) {
	userID := "user-123"

	t.Run("access token", func(t *testing.T) {
		token, err := GenerateToken(userID)
		if err != nil {
			t.Fatal(err)
		}

		gotID, gotType, err := ValidateToken(token)
		if err != nil {
			t.Fatal(err)
		}
		if gotID != userID {
			t.Fatalf("user id = %q, want %q", gotID, userID)
		}
		if gotType != "access" {
			t.Fatalf("type = %q, want access", gotType)
		}
	})

	t.Run("refresh token", func(t *testing.T) {
		token, err := GenerateRefreshToken(userID)
		if err != nil {
			t.Fatal(err)
		}

		_, gotType, err := ValidateToken(token)
		if err != nil {
			t.Fatal(err)
		}
		if gotType != "refresh" {
			t.Fatalf("type = %q, want refresh", gotType)
		}
	})
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("garbage token must be rejected")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken("user-123")
	if err != nil {
		t.Fatal(err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, _, err := ValidateToken(tampered); err == nil {
		t.Fatal("tampered signature must be rejected")
	}
}

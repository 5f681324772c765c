package services

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hash, err := HashPassword("s3cret!!")
		if err != nil {
			t.Fatalf("hash failed: %v", err)
		}
		if !strings.Contains(hash, "$") {
			t.Fatal("hash must be salt$hash encoded")
		}

		ok, err := VerifyPassword(hash, "s3cret!!")
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("correct password must verify")
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		hash, err := HashPassword("s3cret!!")
		if err != nil {
			t.Fatal(err)
		}
		ok, err := VerifyPassword(hash, "wr0ng!!!")
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("wrong password must not verify")
		}
	})

	t.Run("weak password rejected", func(t *testing.T) {
		if _, err := HashPassword("abcdef"); err == nil {
			t.Fatal("password without number and special character must be rejected")
		}
	})

	t.Run("same password different salts", func(t *testing.T) {
		h1, _ := HashPassword("s3cret!!")
		h2, _ := HashPassword("s3cret!!")
		if h1 == h2 {
			t.Fatal("hashes must differ due to random salt")
		}
	})
}

func TestVerifyPasswordBadFormat(t *testing.T) {
	if _, err := VerifyPassword("notahash", "whatever"); err == nil {
		t.Fatal("malformed stored hash must error")
	}
}

package services

import (
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// GenerateTwoFactorSecret creates a new TOTP key for an account. The secret
// is only persisted once the user proves they can generate a valid code.
func GenerateTwoFactorSecret(email string) (*otp.Key, error) {
	return totp.Generate(totp.GenerateOpts{
		Issuer:      TokenIssuer,
		AccountName: email,
	})
}

// ValidateTwoFactorCode checks a 6-digit TOTP code against a secret.
func ValidateTwoFactorCode(code, secret string) bool {
	return totp.Validate(code, secret)
}

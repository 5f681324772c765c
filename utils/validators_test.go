package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"s3cret!!", true},
		{"abc1!", false},      // too short
		{"abcdefg", false},    // no number, no special
		{"abcdef1", false},    // no special
		{"abcdef!", false},    // no number
		{"p4ss-word", true},
	}

	for _, tt := range tests {
		if got := ValidatePassword(tt.password); got != tt.want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

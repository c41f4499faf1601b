package utils

import "testing"

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP()
		if err != nil {
			t.Fatalf("GenerateOTP: %v", err)
		}
		if len(otp) != 6 {
			t.Fatalf("otp %q has length %d, want 6", otp, len(otp))
		}
		for _, r := range otp {
			if r < '0' || r > '9' {
				t.Fatalf("otp %q contains non-digit %q", otp, r)
			}
		}
	}
}

func TestOTPMatch(t *testing.T) {
	cases := []struct {
		stored, submitted string
		want              bool
	}{
		{"123456", "123456", true},
		{"123456", "654321", false},
		{"123456", "12345", false},
		{"123456", "", false},
		{"", "", true},
	}
	for _, c := range cases {
		if got := OTPMatch(c.stored, c.submitted); got != c.want {
			t.Errorf("OTPMatch(%q, %q) = %v, want %v", c.stored, c.submitted, got, c.want)
		}
	}
}

package services

import (
	"errors"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"ada", "margaret_h", "j.doe", "user-20", "abcdefghijklmnopqrst"} {
		if err := ValidateUsername(valid); err != nil {
			t.Fatalf("expected %q to be valid: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "ab", "abcdefghijklmnopqrstu", "has space", "semi;colon"} {
		if err := ValidateUsername(invalid); !errors.Is(err, ErrUsernameInvalid) {
			t.Fatalf("expected %q to be invalid, got %v", invalid, err)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	if err := ValidateEmail("  Ada@Example.COM "); err != nil {
		t.Fatalf("expected trimmed mixed-case email to be valid: %v", err)
	}
	for _, invalid := range []string{"", "not-an-email", "a@", "@b.com"} {
		if err := ValidateEmail(invalid); !errors.Is(err, ErrEmailInvalid) {
			t.Fatalf("expected %q to be invalid, got %v", invalid, err)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid", password: "Str0ng!pass", wantErr: nil},
		{name: "too short", password: "S1!a", wantErr: ErrPasswordLength},
		{name: "no uppercase", password: "weak1!pass", wantErr: ErrPasswordWeak},
		{name: "no lowercase", password: "WEAK1!PASS", wantErr: ErrPasswordWeak},
		{name: "no digit", password: "Weakest!pass", wantErr: ErrPasswordWeak},
		{name: "no special", password: "Weak1pass", wantErr: ErrPasswordWeak},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePassword(testCase.password)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	if got := NormalizeEmail("  Ada@Example.COM "); got != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", got)
	}
}

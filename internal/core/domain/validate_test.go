package domain

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"abcd", false},
		{"abcde", true},
		{"alice123", true},
		{strings.Repeat("x", 20), true},
		{strings.Repeat("x", 21), false},
		{"with spaces ok", true},
	}
	for _, tc := range cases {
		if got := ValidateUsername(tc.input); got != tc.want {
			t.Errorf("ValidateUsername(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"abc12345", true},
		{"abcdefgh", false}, // no digit
		{"12345678", false}, // no letter
		{"1234567", false},  // too short
		{"a234567", false},  // too short even with both classes
		{"Secret123", true},
		{"!!!!a1!!", true}, // specials allowed but not required
	}
	for _, tc := range cases {
		if got := ValidatePassword(tc.input); got != tc.want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"a@b.c", true},
		{"nodomain", false},
		{"a@b", false}, // no dot after '@'
		{"@b.c", false},
		{"a@.c", false}, // nothing before the dot
		{"alice@example.com", true},
		{"a@b@c.d", false}, // '@' not allowed inside local or domain
		{"a@b..c", true},   // consecutive dots are not rejected
	}
	for _, tc := range cases {
		if got := ValidateEmail(tc.input); got != tc.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole(1); err != nil || r != RoleGeneralUser {
		t.Fatalf("ParseRole(1) = %v, %v", r, err)
	}
	if r, err := ParseRole(2); err != nil || r != RoleAdministrator {
		t.Fatalf("ParseRole(2) = %v, %v", r, err)
	}
	for _, sel := range []int{0, 3, -1, 99} {
		if _, err := ParseRole(sel); err != ErrInvalidRole {
			t.Errorf("ParseRole(%d) error = %v, want ErrInvalidRole", sel, err)
		}
	}
}

func TestRoleName(t *testing.T) {
	if RoleGeneralUser.Name() != "General User" {
		t.Errorf("unexpected name: %s", RoleGeneralUser.Name())
	}
	if RoleAdministrator.Name() != "Administrator" {
		t.Errorf("unexpected name: %s", RoleAdministrator.Name())
	}
	if Role(7).Valid() {
		t.Errorf("Role(7) should not be valid")
	}
}

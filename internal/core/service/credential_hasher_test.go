package service

import (
	"strings"
	"testing"
)

// Cost 4 (bcrypt minimum) keeps the tests fast; the verification contract is
// independent of cost.
func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4)

	credential, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if strings.Contains(credential, "Secret123") {
		t.Fatalf("credential must not contain the plaintext")
	}
	if !h.Verify("Secret123", credential) {
		t.Fatalf("Verify(p, Hash(p)) should be true")
	}
	if h.Verify("Secret124", credential) {
		t.Fatalf("Verify with a different password should be false")
	}
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	h := NewBcryptHasher(4)

	c1, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("first hash failed: %v", err)
	}
	c2, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("second hash failed: %v", err)
	}
	if c1 == c2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
	if !h.Verify("Secret123", c1) || !h.Verify("Secret123", c2) {
		t.Fatalf("both credentials must verify the password")
	}
}

func TestBcryptHasher_MalformedCredential(t *testing.T) {
	h := NewBcryptHasher(4)

	for _, credential := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if h.Verify("Secret123", credential) {
			t.Errorf("Verify against %q should fail, not panic or succeed", credential)
		}
	}
}

func TestNewBcryptHasher_CostClamp(t *testing.T) {
	// Out-of-range costs fall back to the default instead of failing later.
	for _, cost := range []int{-1, 0, 99} {
		h := NewBcryptHasher(cost)
		credential, err := h.Hash("Secret123")
		if err != nil {
			t.Fatalf("Hash with clamped cost %d failed: %v", cost, err)
		}
		if !h.Verify("Secret123", credential) {
			t.Fatalf("round trip with clamped cost %d failed", cost)
		}
	}
}

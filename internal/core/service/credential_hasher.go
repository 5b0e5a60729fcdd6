package service

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/c-a-r-l-x/accounts-service/internal/api/metrics"
)

// BcryptHasher implements ports.CredentialHasher with bcrypt. The produced
// credential is self-describing: salt and cost travel inside the hash string,
// so verification needs nothing beyond the stored value.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given cost. Costs outside
// bcrypt's supported range fall back to the library default, which keeps a
// single hash in the tens-of-milliseconds range on current hardware.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	start := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	metrics.HashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares in constant time. A malformed or corrupt credential makes
// bcrypt return an error, which is reported as a plain mismatch.
func (h *BcryptHasher) Verify(password, credential string) bool {
	start := time.Now()
	err := bcrypt.CompareHashAndPassword([]byte(credential), []byte(password))
	metrics.HashDuration.WithLabelValues("verify").Observe(time.Since(start).Seconds())
	return err == nil
}

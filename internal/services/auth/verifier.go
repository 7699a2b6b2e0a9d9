package auth

import (
	"walletdesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a supplied password against a stored credential
// and prepares passwords for storage. Verification is pluggable because the
// system historically performed none; see InsecureVerifier.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(stored, supplied string) error
}

// InsecureVerifier accepts any password and stores passwords verbatim. It
// reproduces the historical behavior of this system and is the default;
// main logs a warning when it is active. Select the bcrypt verifier via
// AUTH_VERIFIER=bcrypt.
type InsecureVerifier struct{}

func (InsecureVerifier) Hash(password string) (string, error) { return password, nil }

func (InsecureVerifier) Verify(stored, supplied string) error { return nil }

// BcryptVerifier stores bcrypt hashes and rejects mismatches. Identities
// without a stored credential (customers) cannot pass it.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Hash(password string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (v BcryptVerifier) Verify(stored, supplied string) error {
	if stored == "" {
		return domain.ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)); err != nil {
		return domain.ErrUnauthenticated
	}
	return nil
}

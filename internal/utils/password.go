package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword runs the plaintext through bcrypt at the requested cost.
// Costs below bcrypt's minimum (including the zero value of an unset
// config) fall back to the library default.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
// The comparison happens inside bcrypt; the hash is never reversed.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

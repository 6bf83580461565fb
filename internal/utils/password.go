package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password for storage. The cost comes from
// BCRYPT_COST; values outside bcrypt's supported range are replaced with the
// library default so a misconfigured cost can never produce weak hashes or
// make registration fail outright.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored hash. A malformed
// hash and a wrong password are indistinguishable to the caller; login maps
// both to the same generic rejection.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt generates a fresh random salt per call, so equal passwords never
// share a stored hash.
const bcryptCost = 10

// HashPassword derives a one-way salted digest of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether candidate matches the stored hash.
// bcrypt performs the comparison in constant time.
func CheckPassword(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

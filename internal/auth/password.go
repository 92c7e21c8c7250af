package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with the configured cost.
// bcrypt embeds a fresh random salt, so two hashes of the same
// plaintext differ but both verify.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// PasswordMatches verifies a plaintext password against its stored
// hash. A malformed hash reads as a mismatch, never an error: a
// corrupt stored digest must be indistinguishable from a wrong
// password to the caller.
func PasswordMatches(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

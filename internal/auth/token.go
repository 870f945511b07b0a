package auth

import "golang.org/x/crypto/bcrypt"

// HashToken hashes a plaintext API token for storage.
func HashToken(token string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(token), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CompareToken verifies an API token against its stored hash.
func CompareToken(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

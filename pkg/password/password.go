package password

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword menghasilkan bcrypt hash dari password plaintext.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash membandingkan password plaintext dengan hash tersimpan.
func CheckPasswordHash(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

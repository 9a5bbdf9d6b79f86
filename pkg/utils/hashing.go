package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// GenerateShareToken returns a URL-safe token built from byteLen bytes of
// CSPRNG entropy. Share tokens must stay unguessable; 8 bytes is the minimum.
func GenerateShareToken(byteLen int) (string, error) {
	if byteLen < 8 {
		return "", errors.New("share token needs at least 8 bytes of entropy")
	}

	bytes := make([]byte, byteLen)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

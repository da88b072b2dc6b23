package helper

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidateResetPassword(email, newPassword string) error {
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return errors.New("format email tidak valid")
	}
	if len(newPassword) < 8 {
		return errors.New("password baru minimal 8 karakter")
	}
	return nil
}

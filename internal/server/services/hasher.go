package services

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies secrets.
type PasswordHasher interface {
	Hash(password string, cost int) (string, error)
	// Compare reports whether password matches hash.
	Compare(password, hash string) bool
}

// ErrPasswordTooLong is returned by BcryptHasher for passwords over 72 bytes.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

type BcryptHasher struct{}

func (BcryptHasher) Hash(password string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptHasher) Compare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IDSource produces candidate user ids.
type IDSource interface {
	NewID() string
}

// UUIDSource yields random (version 4) UUIDs in canonical dashed form.
type UUIDSource struct{}

func (UUIDSource) NewID() string {
	return uuid.NewString()
}

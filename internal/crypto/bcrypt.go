package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordTooLong is returned when the password exceeds the 72 bytes
	// bcrypt can take into account.
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrInvalidCost is returned by [NewBcryptHasher] for a cost outside
	// bcrypt's supported range.
	ErrInvalidCost = errors.New("invalid bcrypt cost")
)

const maxPasswordBytes = 72

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a [PasswordHasher] backed by bcrypt with the given
// cost factor. Cost 10 gives roughly 100ms-scale verification on commodity
// hardware.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}

	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	if len(plain) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

func (h *bcryptHasher) Verify(plain, hashed string) bool {
	if len(plain) > maxPasswordBytes {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

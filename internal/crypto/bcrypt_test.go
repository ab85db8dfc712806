package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) PasswordHasher {
	t.Helper()

	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestNewBcryptHasher_InvalidCost(t *testing.T) {
	for _, cost := range []int{0, bcrypt.MinCost - 1, bcrypt.MaxCost + 1} {
		h, err := NewBcryptHasher(cost)
		assert.Nil(t, h)
		assert.ErrorIs(t, err, ErrInvalidCost)
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	h1, err := h.Hash("pw1")
	require.NoError(t, err)
	h2, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, "pw1", h1)
	assert.NotEqual(t, h1, h2, "two hashes of the same password must differ")
}

func TestHash_UsesConfiguredCost(t *testing.T) {
	t.Parallel()
	h, err := NewBcryptHasher(5)
	require.NoError(t, err)

	hashed, err := h.Hash("pw1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestHash_TooLong(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	_, err := h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestVerify(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	hashed, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)

	tests := []struct {
		name  string
		plain string
		hash  string
		want  bool
	}{
		{name: "correct password", plain: "correct horse battery staple", hash: hashed, want: true},
		{name: "wrong password", plain: "wrong", hash: hashed, want: false},
		{name: "empty password", plain: "", hash: hashed, want: false},
		{name: "garbage hash", plain: "correct horse battery staple", hash: "not-a-hash", want: false},
		{name: "too long password", plain: strings.Repeat("a", 100), hash: hashed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.plain, tt.hash))
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto provides server-side password hashing.
//
// The only abstraction is [PasswordHasher]: a one-way, salted hash with a
// constant-time verification. The shipped implementation is bcrypt-based
// ([NewBcryptHasher]); the cost factor comes from configuration.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher hashes and verifies user passwords.
// Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of plain. Two calls with the same
	// input return different values because a fresh salt is embedded in
	// every output.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches hashed. The comparison runs in
	// constant time with respect to the stored hash.
	Verify(plain, hashed string) bool
}

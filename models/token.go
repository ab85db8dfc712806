// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session claim set carried inside a bearer token.
//
// The registered claims hold the issuer, subject (decimal user id), issued-at
// and expiry timestamps. UserID and Email are the identity fields consumed by
// downstream handlers.
type Claims struct {
	jwt.RegisteredClaims

	// UserID identifies the authenticated user.
	UserID int64 `json:"userId"`

	// Email is the authenticated user's email at the moment of issuance.
	Email string `json:"email"`
}

// Token wraps a signed JWT together with the claims it carries.
type Token struct {
	// Claims is the verified (or freshly issued) claim set.
	Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

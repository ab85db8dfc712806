// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-task-keeper server handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "message"
// field of HTTP response bodies. Clients match on status codes, not on these
// strings, but the wording is kept stable.
package app

const (
	// MsgCredentialsRequired is returned when email or password is missing.
	MsgCredentialsRequired = "Email and password are required"

	MsgInvalidEmail     = "Email is invalid"
	MsgPasswordTooLong  = "Password must be at most 72 bytes"
	MsgTitleRequired    = "Title is required"
	MsgTitleTooLong     = "Title is too long"
	MsgNothingToUpdate  = "Title or completed is required"
	MsgInvalidTaskID    = "Todo ID is invalid"
	MsgEmptyBody        = "Request body is required"
	MsgInvalidJSON      = "Invalid JSON was passed"
	MsgInvalidData      = "Invalid data provided"
	MsgEmailExists      = "Email already exists"
	MsgNotFound         = "Not found"
	MsgServerIsRunning  = "Server is running!"
	MsgLoginSuccessful  = "Login successful"
	MsgNotAuthenticated = "User not authenticated"

	// MsgInvalidLoginPassword is the single answer for an unknown email and a
	// wrong password alike.
	MsgInvalidLoginPassword = "Invalid email or password"

	// MsgTokenRequired is returned when the Authorization header is missing
	// or is not a bearer credential.
	MsgTokenRequired = "Authentication token required"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token fails
	// signature, issuer, expiry or claim checks.
	MsgTokenIsExpiredOrInvalid = "Invalid or expired token"

	// MsgTaskNotFoundOrUnauthorized covers both a missing task and a task
	// owned by somebody else.
	MsgTaskNotFoundOrUnauthorized = "Todo not found or unauthorized"

	// MsgInternalServerError hides internal failure details from clients.
	MsgInternalServerError = "Internal server error"
)

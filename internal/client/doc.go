// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the task API.
//
// Each invocation runs a single command (register, login, list, add, ...)
// through an [adapter.ServerAdapter] and prints the result. The bearer token
// printed by login is passed to later invocations via ADAPTER_TOKEN.
package client

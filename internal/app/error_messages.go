// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// gateway handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies or log entries to describe the outcome of a request.
package app

const (
	// MsgTokenIsExpired is returned when a bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified (wrong signature, wrong issuer, malformed).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNotFound is returned for a known path requested with an
	// unsupported method.
	MsgNotFound = "not found"

	// MsgNoWalletConnected is logged when a read endpoint is called before
	// the gateway wallet is connected.
	MsgNoWalletConnected = "no wallet connected"

	MsgInvalidDepositRequest      = "invalid deposit request"
	MsgInvalidWithdrawRequest     = "invalid withdraw request"
	MsgInvalidCreateBankRequest   = "invalid create bank request"
	MsgInvalidBankDepositRequest  = "invalid bank deposit request"
	MsgInvalidBankWithdrawRequest = "invalid bank withdraw request"
	MsgInvalidOperationsRequest   = "invalid operations request"

	MsgReadVaultFailed      = "failed to read vault state"
	MsgFetchBankFailed      = "failed to fetch bank account"
	MsgListAccountsFailed   = "failed to list accounts"
	MsgListOperationsFailed = "failed to list operations"

	// MsgOperationFailed is logged when a submitted operation ends in a
	// failure status.
	MsgOperationFailed = "operation failed"
)

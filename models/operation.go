// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

// OperationStatus is the terminal outcome of a submitted operation.
type OperationStatus int

const (
	// StatusSuccess means the transaction reached the configured commitment.
	StatusSuccess OperationStatus = iota
	// StatusNeedsInitialization means the program rejected the instruction
	// because the target account was never initialized.
	StatusNeedsInitialization
	// StatusFailed covers every other failure.
	StatusFailed
)

func (s OperationStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNeedsInitialization:
		return "needs_initialization"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ParseOperationStatus is the inverse of [OperationStatus.String].
func ParseOperationStatus(s string) OperationStatus {
	switch s {
	case "success":
		return StatusSuccess
	case "needs_initialization":
		return StatusNeedsInitialization
	default:
		return StatusFailed
	}
}

func (s OperationStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *OperationStatus) UnmarshalText(b []byte) error {
	*s = ParseOperationStatus(string(b))
	return nil
}

// Action names a user-facing operation.
type Action string

const (
	ActionConnectWallet   Action = "connect_wallet"
	ActionVaultInitialize Action = "vault_initialize"
	ActionVaultDeposit    Action = "vault_deposit"
	ActionVaultWithdraw   Action = "vault_withdraw"
	ActionBankCreate      Action = "bank_create"
	ActionBankDeposit     Action = "bank_deposit"
	ActionBankWithdraw    Action = "bank_withdraw"
	ActionFetchAccounts   Action = "fetch_accounts"
)

// OperationResult is what the request dispatcher reports for one
// submitted operation.
type OperationResult struct {
	Status    OperationStatus
	Signature solana.Signature
	// Message is the human-readable outcome, filled in by the action layer.
	Message string
	Err     error
	// Recovered is set when a deposit hit an uninitialized vault and the
	// result describes the follow-up initialize.
	Recovered bool
}

// Succeeded builds a successful result.
func Succeeded(sig solana.Signature) OperationResult {
	return OperationResult{Status: StatusSuccess, Signature: sig}
}

// Failed builds a failed result.
func Failed(err error) OperationResult {
	return OperationResult{Status: StatusFailed, Err: err}
}

// NeedsInitialization builds a result for a rejected operation on an
// uninitialized account.
func NeedsInitialization(err error) OperationResult {
	return OperationResult{Status: StatusNeedsInitialization, Err: err}
}

// OK reports whether the operation succeeded.
func (r OperationResult) OK() bool {
	return r.Status == StatusSuccess
}

// Operation is one entry of the operation journal.
type Operation struct {
	ID        string          `json:"id"`
	Owner     string          `json:"owner"`
	Action    Action          `json:"action"`
	Status    OperationStatus `json:"status"`
	Signature string          `json:"signature,omitempty"`
	Message   string          `json:"message"`
	CreatedAt time.Time       `json:"created_at"`
}

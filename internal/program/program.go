// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package program describes the two on-chain programs the client talks to:
// the per-user SOL vault and the named bank account program.
//
// It owns everything that must match the deployed programs byte for byte:
// program identifiers, PDA seeds, the embedded IDLs, Anchor discriminators,
// borsh encoding of instruction arguments and decoding of account data.
// Nothing here performs I/O.
package program

import (
	"errors"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrUnknownInstruction    = errors.New("unknown instruction")
	ErrMissingAccount        = errors.New("missing instruction account")
	ErrArgumentMismatch      = errors.New("instruction arguments do not match idl")
	ErrInvalidAccountData    = errors.New("unexpected account data")
	ErrDiscriminatorMismatch = errors.New("account discriminator mismatch")
)

var (
	// DefaultVaultProgramID is the deployed vault program.
	DefaultVaultProgramID = solana.MustPublicKeyFromBase58("CatTg5QoJNvZFcKiL3aQGBeuiE3i1F2GZRUj1qZCWYuN")
	// DefaultBankProgramID is the deployed bank program.
	DefaultBankProgramID = solana.MustPublicKeyFromBase58("3rN9H3eepjWo9BmgVTg98XpvX8nfVqcYjXzkvdpEvwJP")
)

var (
	StateSeedPrefix = []byte("state")
	VaultSeedPrefix = []byte("vault")
	BankSeedPrefix  = []byte("bankaccount")
)

const (
	// VaultNotInitializedCode is the custom error the vault program returns
	// when deposit or withdraw target a state account that does not exist.
	VaultNotInitializedCode uint32 = 0x0
	// AnchorAccountNotInitializedCode is Anchor's AccountNotInitialized.
	AnchorAccountNotInitializedCode uint32 = 3012
)

// IsNotInitializedCode reports whether a custom program error code means
// the target account has not been initialized yet.
func IsNotInitializedCode(code uint32) bool {
	return code == VaultNotInitializedCode || code == AnchorAccountNotInitializedCode
}

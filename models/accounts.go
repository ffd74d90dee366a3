// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

// MaxBankNameLength is the longest bank account name, in bytes, the client
// will submit.
const MaxBankNameLength = 32

// VaultAddresses holds the two program-derived addresses belonging to one
// vault owner.
type VaultAddresses struct {
	State     solana.PublicKey `json:"state"`
	StateBump uint8            `json:"state_bump"`
	Vault     solana.PublicKey `json:"vault"`
	VaultBump uint8            `json:"vault_bump"`
}

// VaultState is the decoded on-chain state account of a vault.
type VaultState struct {
	VaultBump uint8 `json:"vault_bump"`
	StateBump uint8 `json:"state_bump"`
}

// VaultInfo describes an owner's vault as observed on-chain.
type VaultInfo struct {
	Addresses VaultAddresses `json:"addresses"`
	// Initialized reports whether the state account exists.
	Initialized bool `json:"initialized"`
	// State is nil when the vault is not initialized.
	State   *VaultState `json:"state,omitempty"`
	Balance Lamports    `json:"balance"`
}

// BankAccount is a decoded account of the bank program.
type BankAccount struct {
	Address solana.PublicKey `json:"address"`
	Name    string           `json:"name"`
	Balance Lamports         `json:"balance"`
	Owner   solana.PublicKey `json:"owner"`
	// Lamports is the raw lamport balance held by the account, rent included.
	Lamports Lamports `json:"lamports"`
}

// AccountsSnapshot is the cached view of on-chain accounts for one owner.
type AccountsSnapshot struct {
	Owner     solana.PublicKey `json:"owner"`
	Vault     VaultInfo        `json:"vault"`
	Banks     []BankAccount    `json:"banks"`
	FetchedAt time.Time        `json:"fetched_at"`
	// Stale is set after a mutation; a stale snapshot is refreshed on the
	// next read.
	Stale bool `json:"stale"`
}

// OwnBanks returns the bank accounts whose owner field matches the
// snapshot owner.
func (s AccountsSnapshot) OwnBanks() []BankAccount {
	own := make([]BankAccount, 0, len(s.Banks))
	for _, b := range s.Banks {
		if b.Owner.Equals(s.Owner) {
			own = append(own, b)
		}
	}
	return own
}

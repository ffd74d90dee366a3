package program

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// PDA is a program-derived address together with the bump seed that moved
// it off the ed25519 curve.
type PDA struct {
	Address solana.PublicKey
	Bump    uint8
}

// FindPDA derives the canonical program address for seeds. The result
// depends only on its inputs.
func FindPDA(programID solana.PublicKey, seeds ...[]byte) (PDA, error) {
	addr, bump, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return PDA{}, fmt.Errorf("find program address: %w", err)
	}
	return PDA{Address: addr, Bump: bump}, nil
}

// StateAddress derives ["state", owner] under the vault program.
func StateAddress(programID, owner solana.PublicKey) (PDA, error) {
	return FindPDA(programID, StateSeedPrefix, owner.Bytes())
}

// VaultAddress derives ["vault", state] under the vault program.
func VaultAddress(programID, state solana.PublicKey) (PDA, error) {
	return FindPDA(programID, VaultSeedPrefix, state.Bytes())
}

// BankAddress derives ["bankaccount", user] under the bank program.
func BankAddress(programID, user solana.PublicKey) (PDA, error) {
	return FindPDA(programID, BankSeedPrefix, user.Bytes())
}

package program

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/MKhiriev/go-sol-vault/models"
)

// Vault builds instructions for the vault program deployed at ProgramID.
type Vault struct {
	ProgramID solana.PublicKey
}

// NewVault returns a Vault for programID, falling back to the deployed
// program when programID is zero.
func NewVault(programID solana.PublicKey) Vault {
	if programID.IsZero() {
		programID = DefaultVaultProgramID
	}
	return Vault{ProgramID: programID}
}

// Addresses derives the state and vault PDAs of owner.
func (v Vault) Addresses(owner solana.PublicKey) (models.VaultAddresses, error) {
	state, err := StateAddress(v.ProgramID, owner)
	if err != nil {
		return models.VaultAddresses{}, fmt.Errorf("derive state address: %w", err)
	}

	vault, err := VaultAddress(v.ProgramID, state.Address)
	if err != nil {
		return models.VaultAddresses{}, fmt.Errorf("derive vault address: %w", err)
	}

	return models.VaultAddresses{
		State:     state.Address,
		StateBump: state.Bump,
		Vault:     vault.Address,
		VaultBump: vault.Bump,
	}, nil
}

func (v Vault) Initialize(owner solana.PublicKey) (solana.Instruction, error) {
	return v.build("initialize", owner)
}

func (v Vault) Deposit(owner solana.PublicKey, amount models.Lamports) (solana.Instruction, error) {
	return v.build("deposit", owner, amount.Uint64())
}

func (v Vault) Withdraw(owner solana.PublicKey, amount models.Lamports) (solana.Instruction, error) {
	return v.build("withdraw", owner, amount.Uint64())
}

func (v Vault) build(name string, owner solana.PublicKey, args ...any) (solana.Instruction, error) {
	addrs, err := v.Addresses(owner)
	if err != nil {
		return nil, err
	}

	return vaultIDL.BuildInstruction(v.ProgramID, name, Accounts{
		"signer": owner,
		"state":  addrs.State,
		"vault":  addrs.Vault,
	}, args...)
}

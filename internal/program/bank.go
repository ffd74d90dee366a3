package program

import (
	"github.com/gagliardetto/solana-go"

	"github.com/MKhiriev/go-sol-vault/models"
)

// Bank builds instructions for the bank program deployed at ProgramID.
type Bank struct {
	ProgramID solana.PublicKey
}

// NewBank returns a Bank for programID, falling back to the deployed
// program when programID is zero.
func NewBank(programID solana.PublicKey) Bank {
	if programID.IsZero() {
		programID = DefaultBankProgramID
	}
	return Bank{ProgramID: programID}
}

// Address derives the bank account PDA of user.
func (b Bank) Address(user solana.PublicKey) (PDA, error) {
	return BankAddress(b.ProgramID, user)
}

func (b Bank) Create(user solana.PublicKey, name string) (solana.Instruction, error) {
	return b.build("create", user, name)
}

func (b Bank) Deposit(user solana.PublicKey, amount models.Lamports) (solana.Instruction, error) {
	return b.build("deposit", user, amount.Uint64())
}

func (b Bank) Withdraw(user solana.PublicKey, amount models.Lamports) (solana.Instruction, error) {
	return b.build("withdraw", user, amount.Uint64())
}

func (b Bank) build(name string, user solana.PublicKey, args ...any) (solana.Instruction, error) {
	bank, err := b.Address(user)
	if err != nil {
		return nil, err
	}

	return bankIDL.BuildInstruction(b.ProgramID, name, Accounts{
		"bank": bank.Address,
		"user": user,
	}, args...)
}

package program

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/MKhiriev/go-sol-vault/models"
)

// DecodeVaultState decodes a VaultState account: discriminator, vault bump,
// state bump.
func DecodeVaultState(data []byte) (models.VaultState, error) {
	body, err := stripDiscriminator(data, VaultStateDiscriminator)
	if err != nil {
		return models.VaultState{}, err
	}

	dec := bin.NewBorshDecoder(body)
	vaultBump, err := dec.ReadUint8()
	if err != nil {
		return models.VaultState{}, fmt.Errorf("%w: vault bump: %w", ErrInvalidAccountData, err)
	}
	stateBump, err := dec.ReadUint8()
	if err != nil {
		return models.VaultState{}, fmt.Errorf("%w: state bump: %w", ErrInvalidAccountData, err)
	}

	return models.VaultState{VaultBump: vaultBump, StateBump: stateBump}, nil
}

// DecodeBank decodes a Bank account: discriminator, name, balance, owner.
func DecodeBank(address solana.PublicKey, data []byte) (models.BankAccount, error) {
	body, err := stripDiscriminator(data, BankDiscriminator)
	if err != nil {
		return models.BankAccount{}, err
	}

	dec := bin.NewBorshDecoder(body)
	name, err := dec.ReadString()
	if err != nil {
		return models.BankAccount{}, fmt.Errorf("%w: name: %w", ErrInvalidAccountData, err)
	}
	balance, err := dec.ReadUint64(bin.LE)
	if err != nil {
		return models.BankAccount{}, fmt.Errorf("%w: balance: %w", ErrInvalidAccountData, err)
	}
	owner, err := dec.ReadNBytes(solana.PublicKeyLength)
	if err != nil {
		return models.BankAccount{}, fmt.Errorf("%w: owner: %w", ErrInvalidAccountData, err)
	}

	return models.BankAccount{
		Address: address,
		Name:    name,
		Balance: models.Lamports(balance),
		Owner:   solana.PublicKeyFromBytes(owner),
	}, nil
}

// EncodeBank is the inverse of DecodeBank.
func EncodeBank(account models.BankAccount) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := bin.NewBorshEncoder(buf)

	if err := enc.WriteBytes(BankDiscriminator[:], false); err != nil {
		return nil, err
	}
	if err := enc.WriteString(account.Name); err != nil {
		return nil, err
	}
	if err := enc.WriteUint64(account.Balance.Uint64(), bin.LE); err != nil {
		return nil, err
	}
	if err := enc.WriteBytes(account.Owner[:], false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeVaultState is the inverse of DecodeVaultState.
func EncodeVaultState(state models.VaultState) []byte {
	data := make([]byte, 0, len(VaultStateDiscriminator)+2)
	data = append(data, VaultStateDiscriminator[:]...)
	return append(data, state.VaultBump, state.StateBump)
}

func stripDiscriminator(data []byte, want Discriminator) ([]byte, error) {
	if len(data) < len(want) {
		return nil, fmt.Errorf("%w: %d bytes is shorter than a discriminator", ErrInvalidAccountData, len(data))
	}
	if !bytes.Equal(data[:len(want)], want[:]) {
		return nil, ErrDiscriminatorMismatch
	}
	return data[len(want):], nil
}

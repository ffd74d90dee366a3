package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/MKhiriev/go-sol-vault/internal/adapter"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/program"
	"github.com/MKhiriev/go-sol-vault/models"
)

type vaultService struct {
	vault      program.Vault
	sender     TransactionSender
	rpc        adapter.RPCAdapter
	commitment rpc.CommitmentType

	logger *logger.Logger
}

func NewVaultService(vault program.Vault, sender TransactionSender, rpcAdapter adapter.RPCAdapter, commitment rpc.CommitmentType, logger *logger.Logger) VaultService {
	return &vaultService{
		vault:      vault,
		sender:     sender,
		rpc:        rpcAdapter,
		commitment: commitment,
		logger:     logger,
	}
}

func (s *vaultService) Addresses(owner solana.PublicKey) (models.VaultAddresses, error) {
	return s.vault.Addresses(owner)
}

func (s *vaultService) Initialize(ctx context.Context) (solana.Signature, error) {
	owner, err := s.sender.Payer()
	if err != nil {
		return solana.Signature{}, err
	}

	ix, err := s.vault.Initialize(owner)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("build initialize instruction: %w", err)
	}
	return s.sender.Send(ctx, ix)
}

func (s *vaultService) Deposit(ctx context.Context, amount models.Lamports) models.OperationResult {
	if amount == 0 {
		return models.Failed(models.ErrInvalidAmount)
	}

	owner, err := s.sender.Payer()
	if err != nil {
		return models.Failed(err)
	}

	ix, err := s.vault.Deposit(owner, amount)
	if err != nil {
		return models.Failed(fmt.Errorf("build deposit instruction: %w", err))
	}

	sig, err := s.sender.Send(ctx, ix)
	switch {
	case err == nil:
		return models.Succeeded(sig)
	case IsNotInitialized(err):
		return models.NeedsInitialization(err)
	default:
		return models.Failed(err)
	}
}

func (s *vaultService) DepositOrInitialize(ctx context.Context, amount models.Lamports) models.OperationResult {
	result := s.Deposit(ctx, amount)
	if result.Status != models.StatusNeedsInitialization {
		return result
	}

	s.logger.Info().Err(result.Err).Msg("vault is not initialized, initializing instead of depositing")

	sig, err := s.Initialize(ctx)
	if err != nil {
		result = models.Failed(err)
	} else {
		result = models.Succeeded(sig)
	}
	result.Recovered = true
	return result
}

func (s *vaultService) Withdraw(ctx context.Context, amount models.Lamports) (solana.Signature, error) {
	if amount == 0 {
		return solana.Signature{}, models.ErrInvalidAmount
	}

	owner, err := s.sender.Payer()
	if err != nil {
		return solana.Signature{}, err
	}

	ix, err := s.vault.Withdraw(owner, amount)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("build withdraw instruction: %w", err)
	}
	return s.sender.Send(ctx, ix)
}

// State reads the vault state account and the vault balance. A missing state
// account means the vault is not initialized and is not an error.
func (s *vaultService) State(ctx context.Context, owner solana.PublicKey) (models.VaultInfo, error) {
	if s.rpc == nil {
		return models.VaultInfo{}, ErrProviderUnavailable
	}

	addrs, err := s.vault.Addresses(owner)
	if err != nil {
		return models.VaultInfo{}, err
	}
	info := models.VaultInfo{Addresses: addrs}

	account, err := s.rpc.GetAccountInfo(ctx, addrs.State, s.commitment)
	switch {
	case errors.Is(err, adapter.ErrAccountNotFound):
	case err != nil:
		return models.VaultInfo{}, fmt.Errorf("get vault state: %w", err)
	default:
		state, err := program.DecodeVaultState(accountData(account))
		if err != nil {
			return models.VaultInfo{}, fmt.Errorf("decode vault state %s: %w", addrs.State, err)
		}
		info.Initialized = true
		info.State = &state
	}

	balance, err := s.rpc.GetBalance(ctx, addrs.Vault, s.commitment)
	if err != nil {
		return models.VaultInfo{}, fmt.Errorf("get vault balance: %w", err)
	}
	info.Balance = balance

	return info, nil
}

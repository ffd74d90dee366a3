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

type bankService struct {
	bank       program.Bank
	sender     TransactionSender
	rpc        adapter.RPCAdapter
	commitment rpc.CommitmentType

	logger *logger.Logger
}

func NewBankService(bank program.Bank, sender TransactionSender, rpcAdapter adapter.RPCAdapter, commitment rpc.CommitmentType, logger *logger.Logger) BankService {
	return &bankService{
		bank:       bank,
		sender:     sender,
		rpc:        rpcAdapter,
		commitment: commitment,
		logger:     logger,
	}
}

func (s *bankService) Address(owner solana.PublicKey) (solana.PublicKey, error) {
	pda, err := s.bank.Address(owner)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return pda.Address, nil
}

// ValidateBankName accepts names of 1 to models.MaxBankNameLength bytes.
func ValidateBankName(name string) error {
	if len(name) == 0 || len(name) > models.MaxBankNameLength {
		return fmt.Errorf("%w: %d bytes, want 1..%d", models.ErrInvalidBankName, len(name), models.MaxBankNameLength)
	}
	return nil
}

func (s *bankService) Create(ctx context.Context, name string) (solana.Signature, error) {
	if err := ValidateBankName(name); err != nil {
		return solana.Signature{}, err
	}

	user, err := s.sender.Payer()
	if err != nil {
		return solana.Signature{}, err
	}

	ix, err := s.bank.Create(user, name)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("build create instruction: %w", err)
	}
	return s.sender.Send(ctx, ix)
}

func (s *bankService) Deposit(ctx context.Context, amount models.Lamports) (solana.Signature, error) {
	return s.transfer(ctx, amount, s.bank.Deposit)
}

func (s *bankService) Withdraw(ctx context.Context, amount models.Lamports) (solana.Signature, error) {
	return s.transfer(ctx, amount, s.bank.Withdraw)
}

func (s *bankService) transfer(ctx context.Context, amount models.Lamports, build func(solana.PublicKey, models.Lamports) (solana.Instruction, error)) (solana.Signature, error) {
	if amount == 0 {
		return solana.Signature{}, models.ErrInvalidAmount
	}

	user, err := s.sender.Payer()
	if err != nil {
		return solana.Signature{}, err
	}

	ix, err := build(user, amount)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("build bank instruction: %w", err)
	}
	return s.sender.Send(ctx, ix)
}

func (s *bankService) Fetch(ctx context.Context, owner solana.PublicKey) (models.BankAccount, error) {
	if s.rpc == nil {
		return models.BankAccount{}, ErrProviderUnavailable
	}

	address, err := s.Address(owner)
	if err != nil {
		return models.BankAccount{}, err
	}

	account, err := s.rpc.GetAccountInfo(ctx, address, s.commitment)
	if errors.Is(err, adapter.ErrAccountNotFound) {
		return models.BankAccount{}, fmt.Errorf("%w: %s", ErrBankNotFound, address)
	}
	if err != nil {
		return models.BankAccount{}, fmt.Errorf("get bank account: %w", err)
	}

	bank, err := program.DecodeBank(address, accountData(account))
	if err != nil {
		return models.BankAccount{}, fmt.Errorf("decode bank account %s: %w", address, err)
	}
	bank.Lamports = models.Lamports(account.Lamports)
	return bank, nil
}

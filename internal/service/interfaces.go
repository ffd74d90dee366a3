// Package service is the request builder and dispatcher of the client. It
// derives addresses, builds program instructions, signs through the wallet,
// submits through the RPC adapter and waits for confirmation.
//
// [ActionService] sits on top and is what user interfaces call: it checks
// preconditions, reports every outcome exactly once through the [Notifier]
// and records it in the operation journal.
package service

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/MKhiriev/go-sol-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TransactionSender signs and submits transactions paid by the connected wallet.
type TransactionSender interface {
	// Payer returns the connected wallet key. It fails with
	// ErrWalletNotConnected or ErrProviderUnavailable without any network call.
	Payer() (solana.PublicKey, error)

	// Send builds a transaction from instructions, signs it and blocks until it
	// reaches the configured commitment, fails, expires or ctx ends.
	Send(ctx context.Context, instructions ...solana.Instruction) (solana.Signature, error)
}

type VaultService interface {
	Addresses(owner solana.PublicKey) (models.VaultAddresses, error)
	Initialize(ctx context.Context) (solana.Signature, error)
	// Deposit reports StatusNeedsInitialization when the program rejects the
	// deposit because the vault state does not exist.
	Deposit(ctx context.Context, amount models.Lamports) models.OperationResult
	Withdraw(ctx context.Context, amount models.Lamports) (solana.Signature, error)
	State(ctx context.Context, owner solana.PublicKey) (models.VaultInfo, error)
	// DepositOrInitialize deposits and, when the vault turns out to be
	// uninitialized, runs Initialize once and returns that outcome with
	// Recovered set. The deposit is never resubmitted.
	DepositOrInitialize(ctx context.Context, amount models.Lamports) models.OperationResult
}

type BankService interface {
	Address(owner solana.PublicKey) (solana.PublicKey, error)
	Create(ctx context.Context, name string) (solana.Signature, error)
	Deposit(ctx context.Context, amount models.Lamports) (solana.Signature, error)
	Withdraw(ctx context.Context, amount models.Lamports) (solana.Signature, error)
	Fetch(ctx context.Context, owner solana.PublicKey) (models.BankAccount, error)
}

// AccountService caches the accounts view of each owner.
type AccountService interface {
	// List returns the cached snapshot unless it is missing or stale.
	List(ctx context.Context, owner solana.PublicKey) (models.AccountsSnapshot, error)
	Refresh(ctx context.Context, owner solana.PublicKey) (models.AccountsSnapshot, error)
	Invalidate(ctx context.Context, owner solana.PublicKey) error
}

// ActionService is the entry point of user interfaces.
type ActionService interface {
	ConnectWallet(ctx context.Context) (solana.PublicKey, error)
	DisconnectWallet(ctx context.Context)
	Owner() (solana.PublicKey, bool)

	InitializeVault(ctx context.Context) models.OperationResult
	Deposit(ctx context.Context, amount models.Lamports) models.OperationResult
	Withdraw(ctx context.Context, amount models.Lamports) models.OperationResult

	CreateBank(ctx context.Context, name string) models.OperationResult
	BankDeposit(ctx context.Context, amount models.Lamports) models.OperationResult
	BankWithdraw(ctx context.Context, amount models.Lamports) models.OperationResult

	Accounts(ctx context.Context, refresh bool) (models.AccountsSnapshot, error)
	Operations(ctx context.Context, limit uint64) ([]models.Operation, error)
}

// Notifier delivers user-facing messages. Notify never blocks.
type Notifier interface {
	Notify(level models.NotificationLevel, message string) models.Notification
	Notifications() <-chan models.Notification
}

// AccountRefreshJob periodically refreshes the connected owner's accounts.
type AccountRefreshJob interface {
	Start(ctx context.Context)
	Stop()
}

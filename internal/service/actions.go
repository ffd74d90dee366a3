package service

import (
	"context"
	"errors"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/MKhiriev/go-sol-vault/internal/adapter"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/store"
	"github.com/MKhiriev/go-sol-vault/internal/utils"
	"github.com/MKhiriev/go-sol-vault/internal/wallet"
	"github.com/MKhiriev/go-sol-vault/models"
)

// actionTexts are the success text and the failure prefix of one action.
type actionTexts struct {
	success string
	failure string
}

var (
	initializeTexts = actionTexts{success: MsgInitializeSuccess, failure: MsgInitializeFailure}
	depositTexts    = actionTexts{success: MsgDepositSuccess, failure: MsgDepositFailure}
	withdrawTexts   = actionTexts{success: MsgWithdrawSuccess, failure: MsgWithdrawFailure}
	bankCreateTexts = actionTexts{success: MsgBankCreateSuccess, failure: MsgBankCreateFailure}
)

type actionService struct {
	wallet   wallet.Connector
	rpc      adapter.RPCAdapter
	vault    VaultService
	bank     BankService
	accounts AccountService
	notifier Notifier
	journal  store.OperationRepository

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewActionService(
	connector wallet.Connector,
	rpcAdapter adapter.RPCAdapter,
	vault VaultService,
	bank BankService,
	accounts AccountService,
	notifier Notifier,
	journal store.OperationRepository,
	logger *logger.Logger,
) ActionService {
	return &actionService{
		wallet:   connector,
		rpc:      rpcAdapter,
		vault:    vault,
		bank:     bank,
		accounts: accounts,
		notifier: notifier,
		journal:  journal,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
	}
}

func (s *actionService) Owner() (solana.PublicKey, bool) {
	return s.wallet.PublicKey()
}

func (s *actionService) ConnectWallet(ctx context.Context) (solana.PublicKey, error) {
	owner, err := s.wallet.Connect(ctx)
	if err != nil {
		result := models.Failed(err)
		result.Message = MsgWalletConnectError + ": " + err.Error()
		s.finish(ctx, models.ActionConnectWallet, "", result)
		return solana.PublicKey{}, err
	}

	result := models.OperationResult{Status: models.StatusSuccess, Message: MsgWalletConnected + ": " + owner.String()}
	s.finish(ctx, models.ActionConnectWallet, owner.String(), result)
	return owner, nil
}

func (s *actionService) DisconnectWallet(ctx context.Context) {
	s.wallet.Disconnect()
	s.notifier.Notify(models.LevelInfo, MsgWalletDisconnected)
}

func (s *actionService) InitializeVault(ctx context.Context) models.OperationResult {
	return s.perform(ctx, models.ActionVaultInitialize, initializeTexts, func(ctx context.Context) models.OperationResult {
		return resultOf(s.vault.Initialize(ctx))
	})
}

// Deposit falls back to initializing the vault when it does not exist yet;
// the single notification then carries the initialize outcome.
func (s *actionService) Deposit(ctx context.Context, amount models.Lamports) models.OperationResult {
	return s.perform(ctx, models.ActionVaultDeposit, depositTexts, func(ctx context.Context) models.OperationResult {
		return s.vault.DepositOrInitialize(ctx, amount)
	})
}

func (s *actionService) Withdraw(ctx context.Context, amount models.Lamports) models.OperationResult {
	return s.perform(ctx, models.ActionVaultWithdraw, withdrawTexts, func(ctx context.Context) models.OperationResult {
		return resultOf(s.vault.Withdraw(ctx, amount))
	})
}

func (s *actionService) CreateBank(ctx context.Context, name string) models.OperationResult {
	return s.perform(ctx, models.ActionBankCreate, bankCreateTexts, func(ctx context.Context) models.OperationResult {
		return resultOf(s.bank.Create(ctx, name))
	})
}

func (s *actionService) BankDeposit(ctx context.Context, amount models.Lamports) models.OperationResult {
	return s.perform(ctx, models.ActionBankDeposit, depositTexts, func(ctx context.Context) models.OperationResult {
		return resultOf(s.bank.Deposit(ctx, amount))
	})
}

func (s *actionService) BankWithdraw(ctx context.Context, amount models.Lamports) models.OperationResult {
	return s.perform(ctx, models.ActionBankWithdraw, withdrawTexts, func(ctx context.Context) models.OperationResult {
		return resultOf(s.bank.Withdraw(ctx, amount))
	})
}

func (s *actionService) Accounts(ctx context.Context, refresh bool) (models.AccountsSnapshot, error) {
	owner, err := s.precondition()
	if err != nil {
		s.notifier.Notify(models.LevelWarning, preconditionMessage(err))
		return models.AccountsSnapshot{}, err
	}

	var snapshot models.AccountsSnapshot
	if refresh {
		snapshot, err = s.accounts.Refresh(ctx, owner)
	} else {
		snapshot, err = s.accounts.List(ctx, owner)
	}
	if err != nil {
		s.notifier.Notify(models.LevelError, MsgFetchFailure+": "+err.Error())
		return models.AccountsSnapshot{}, err
	}
	return snapshot, nil
}

func (s *actionService) Operations(ctx context.Context, limit uint64) ([]models.Operation, error) {
	var owner string
	if key, ok := s.wallet.PublicKey(); ok {
		owner = key.String()
	}
	return s.journal.ListOperations(ctx, owner, limit)
}

// perform checks the wallet and the provider, runs op, then notifies and
// journals its outcome exactly once. Successful mutations invalidate the
// owner's snapshot; a successful withdraw also refreshes it once.
func (s *actionService) perform(ctx context.Context, action models.Action, texts actionTexts, op func(context.Context) models.OperationResult) models.OperationResult {
	owner, err := s.precondition()
	if err != nil {
		result := models.Failed(err)
		result.Message = preconditionMessage(err)
		s.finish(ctx, action, ownerString(owner), result)
		return result
	}

	result := op(ctx)
	result.Message = texts.message(result)

	if result.OK() {
		if err = s.accounts.Invalidate(ctx, owner); err != nil {
			s.logger.Warn().Err(err).Str("action", string(action)).Msg("failed to invalidate accounts")
		}
		if !result.Recovered && (action == models.ActionVaultWithdraw || action == models.ActionBankWithdraw) {
			if _, err = s.accounts.Refresh(ctx, owner); err != nil {
				s.logger.Warn().Err(err).Str("action", string(action)).Msg("failed to refresh accounts after withdrawal")
			}
		}
	}

	s.finish(ctx, action, owner.String(), result)
	return result
}

// precondition returns the connected owner, or the reason no request may be
// sent. It makes no network calls.
func (s *actionService) precondition() (solana.PublicKey, error) {
	owner, ok := s.wallet.PublicKey()
	if !ok {
		return solana.PublicKey{}, ErrWalletNotConnected
	}
	if s.rpc == nil {
		return owner, ErrProviderUnavailable
	}
	return owner, nil
}

func (s *actionService) finish(ctx context.Context, action models.Action, owner string, result models.OperationResult) {
	s.notifier.Notify(levelOf(result), result.Message)

	op := models.Operation{
		ID:        s.ids.Generate(),
		Owner:     owner,
		Action:    action,
		Status:    result.Status,
		Message:   result.Message,
		CreatedAt: s.now().UTC(),
	}
	if result.Recovered && result.OK() {
		op.Status = models.StatusNeedsInitialization
	}
	if !result.Signature.IsZero() {
		op.Signature = result.Signature.String()
	}

	if err := s.journal.SaveOperation(ctx, op); err != nil {
		s.logger.Err(err).Str("action", string(action)).Msg("failed to journal operation")
	}
}

func (t actionTexts) message(result models.OperationResult) string {
	if result.Recovered {
		return MsgVaultNotInitialized + " " + initializeTexts.message(models.OperationResult{Status: result.Status, Err: result.Err})
	}
	if result.OK() {
		return t.success
	}
	if errors.Is(result.Err, ErrWalletNotConnected) || errors.Is(result.Err, ErrProviderUnavailable) {
		return preconditionMessage(result.Err)
	}
	return t.failure + ": " + errorText(result.Err)
}

func preconditionMessage(err error) string {
	if errors.Is(err, ErrProviderUnavailable) {
		return MsgProviderUnavailable
	}
	return MsgConnectWallet
}

func levelOf(result models.OperationResult) models.NotificationLevel {
	switch {
	case result.Recovered && result.OK():
		return models.LevelWarning
	case result.OK():
		return models.LevelSuccess
	case errors.Is(result.Err, ErrWalletNotConnected):
		return models.LevelWarning
	default:
		return models.LevelError
	}
}

func resultOf(sig solana.Signature, err error) models.OperationResult {
	if err != nil {
		return models.Failed(err)
	}
	return models.Succeeded(sig)
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

func ownerString(owner solana.PublicKey) string {
	if owner.IsZero() {
		return ""
	}
	return owner.String()
}

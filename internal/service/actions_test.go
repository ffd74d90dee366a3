package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sol-vault/internal/adapter"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/mock"
	"github.com/MKhiriev/go-sol-vault/internal/program"
	"github.com/MKhiriev/go-sol-vault/internal/wallet"
	"github.com/MKhiriev/go-sol-vault/models"
)

type actionsFixture struct {
	wallet   *mock.MockConnector
	vault    *mock.MockVaultService
	bank     *mock.MockBankService
	accounts *mock.MockAccountService
	journal  *mock.MockOperationRepository
	notifier Notifier
	service  ActionService
	owner    solana.PublicKey
}

func newActionsFixture(t *testing.T, withProvider bool) actionsFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := actionsFixture{
		wallet:   mock.NewMockConnector(ctrl),
		vault:    mock.NewMockVaultService(ctrl),
		bank:     mock.NewMockBankService(ctrl),
		accounts: mock.NewMockAccountService(ctrl),
		journal:  mock.NewMockOperationRepository(ctrl),
		notifier: NewNotifier(16, logger.Nop()),
		owner:    solana.NewWallet().PublicKey(),
	}

	var rpcAdapter adapter.RPCAdapter
	if withProvider {
		rpcAdapter = mock.NewMockRPCAdapter(ctrl)
	}
	f.service = NewActionService(f.wallet, rpcAdapter, f.vault, f.bank, f.accounts, f.notifier, f.journal, logger.Nop())
	return f
}

func (f actionsFixture) connected() {
	f.wallet.EXPECT().PublicKey().Return(f.owner, true).AnyTimes()
}

// expectJournal expects exactly one journal entry and returns it through got.
func (f actionsFixture) expectJournal(got *models.Operation) {
	f.journal.EXPECT().SaveOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op models.Operation) error {
			*got = op
			return nil
		}).Times(1)
}

func requireSingleNotification(t *testing.T, n Notifier) models.Notification {
	t.Helper()

	got := drain(n)
	require.Len(t, got, 1)
	return got[0]
}

// ── preconditions ──

func TestActionService_NoWallet(t *testing.T) {
	actions := map[string]func(ActionService) models.OperationResult{
		"initialize":    func(s ActionService) models.OperationResult { return s.InitializeVault(context.Background()) },
		"deposit":       func(s ActionService) models.OperationResult { return s.Deposit(context.Background(), 1) },
		"withdraw":      func(s ActionService) models.OperationResult { return s.Withdraw(context.Background(), 1) },
		"create bank":   func(s ActionService) models.OperationResult { return s.CreateBank(context.Background(), "savings") },
		"bank deposit":  func(s ActionService) models.OperationResult { return s.BankDeposit(context.Background(), 1) },
		"bank withdraw": func(s ActionService) models.OperationResult { return s.BankWithdraw(context.Background(), 1) },
	}

	for name, run := range actions {
		t.Run(name, func(t *testing.T) {
			f := newActionsFixture(t, true)
			f.wallet.EXPECT().PublicKey().Return(solana.PublicKey{}, false)

			var op models.Operation
			f.expectJournal(&op)

			result := run(f.service)
			assert.Equal(t, models.StatusFailed, result.Status)
			assert.ErrorIs(t, result.Err, ErrWalletNotConnected)
			assert.Equal(t, MsgConnectWallet, result.Message)

			n := requireSingleNotification(t, f.notifier)
			assert.Equal(t, MsgConnectWallet, n.Message)
			assert.Equal(t, models.LevelWarning, n.Level)

			assert.Empty(t, op.Owner)
			assert.Equal(t, models.StatusFailed, op.Status)
			assert.Equal(t, MsgConnectWallet, op.Message)
		})
	}
}

func TestActionService_NoProvider(t *testing.T) {
	f := newActionsFixture(t, false)
	f.connected()

	var op models.Operation
	f.expectJournal(&op)

	result := f.service.Withdraw(context.Background(), 1)
	assert.ErrorIs(t, result.Err, ErrProviderUnavailable)

	n := requireSingleNotification(t, f.notifier)
	assert.Equal(t, MsgProviderUnavailable, n.Message)
	assert.Equal(t, models.LevelError, n.Level)
	assert.Equal(t, f.owner.String(), op.Owner)
	assert.Equal(t, models.ActionVaultWithdraw, op.Action)
}

// ── mutations ──

func TestActionService_InitializeVault(t *testing.T) {
	f := newActionsFixture(t, true)
	f.connected()

	sig := solana.Signature{1, 1}
	f.vault.EXPECT().Initialize(gomock.Any()).Return(sig, nil)
	f.accounts.EXPECT().Invalidate(gomock.Any(), f.owner).Return(nil)

	var op models.Operation
	f.expectJournal(&op)

	result := f.service.InitializeVault(context.Background())
	assert.True(t, result.OK())
	assert.Equal(t, MsgInitializeSuccess, result.Message)

	n := requireSingleNotification(t, f.notifier)
	assert.Equal(t, MsgInitializeSuccess, n.Message)
	assert.Equal(t, models.LevelSuccess, n.Level)

	assert.Equal(t, sig.String(), op.Signature)
	assert.Equal(t, models.StatusSuccess, op.Status)
	assert.Equal(t, models.ActionVaultInitialize, op.Action)
	assert.NotEmpty(t, op.ID)
}

func TestActionService_Deposit_Messages(t *testing.T) {
	tests := []struct {
		name        string
		result      models.OperationResult
		invalidate  bool
		wantMessage string
		wantLevel   models.NotificationLevel
		wantStatus  models.OperationStatus
	}{
		{
			name:        "deposited",
			result:      models.Succeeded(solana.Signature{2}),
			invalidate:  true,
			wantMessage: MsgDepositSuccess,
			wantLevel:   models.LevelSuccess,
			wantStatus:  models.StatusSuccess,
		},
		{
			name:        "recovered by initializing",
			result:      models.OperationResult{Status: models.StatusSuccess, Signature: solana.Signature{3}, Recovered: true},
			invalidate:  true,
			wantMessage: "Vault not initialized. Vault initialized successfully!",
			wantLevel:   models.LevelWarning,
			wantStatus:  models.StatusNeedsInitialization,
		},
		{
			name:        "recovery failed",
			result:      models.OperationResult{Status: models.StatusFailed, Err: errors.New("insufficient lamports"), Recovered: true},
			wantMessage: "Vault not initialized. Failed to initialize vault: insufficient lamports",
			wantLevel:   models.LevelError,
			wantStatus:  models.StatusFailed,
		},
		{
			name:        "deposit failed",
			result:      models.Failed(errors.New("custom program error: 0x1")),
			wantMessage: "Deposit failed: custom program error: 0x1",
			wantLevel:   models.LevelError,
			wantStatus:  models.StatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newActionsFixture(t, true)
			f.connected()

			f.vault.EXPECT().DepositOrInitialize(gomock.Any(), models.Lamports(100_000_000)).Return(tt.result)
			if tt.invalidate {
				f.accounts.EXPECT().Invalidate(gomock.Any(), f.owner).Return(nil)
			}

			var op models.Operation
			f.expectJournal(&op)

			result := f.service.Deposit(context.Background(), 100_000_000)
			assert.Equal(t, tt.wantMessage, result.Message)

			n := requireSingleNotification(t, f.notifier)
			assert.Equal(t, tt.wantMessage, n.Message)
			assert.Equal(t, tt.wantLevel, n.Level)
			assert.Equal(t, tt.wantStatus, op.Status)
		})
	}
}

func TestActionService_Withdraw_RefreshesOnce(t *testing.T) {
	f := newActionsFixture(t, true)
	f.connected()

	gomock.InOrder(
		f.vault.EXPECT().Withdraw(gomock.Any(), models.Lamports(5)).Return(solana.Signature{4}, nil),
		f.accounts.EXPECT().Invalidate(gomock.Any(), f.owner).Return(nil).Times(1),
		f.accounts.EXPECT().Refresh(gomock.Any(), f.owner).Return(models.AccountsSnapshot{}, nil).Times(1),
	)

	var op models.Operation
	f.expectJournal(&op)

	result := f.service.Withdraw(context.Background(), 5)
	assert.True(t, result.OK())
	assert.Equal(t, MsgWithdrawSuccess, requireSingleNotification(t, f.notifier).Message)
}

func TestActionService_Withdraw_FailureDoesNotRefresh(t *testing.T) {
	f := newActionsFixture(t, true)
	f.connected()

	f.vault.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Return(solana.Signature{}, errors.New("boom"))

	var op models.Operation
	f.expectJournal(&op)

	result := f.service.Withdraw(context.Background(), 5)
	assert.Equal(t, "Withdrawal failed: boom", result.Message)
	assert.Equal(t, "Withdrawal failed: boom", requireSingleNotification(t, f.notifier).Message)
	assert.Empty(t, op.Signature)
}

func TestActionService_RefreshFailureStillNotifiesSuccess(t *testing.T) {
	f := newActionsFixture(t, true)
	f.connected()

	f.bank.EXPECT().Withdraw(gomock.Any(), models.Lamports(7)).Return(solana.Signature{5}, nil)
	f.accounts.EXPECT().Invalidate(gomock.Any(), f.owner).Return(errors.New("locked"))
	f.accounts.EXPECT().Refresh(gomock.Any(), f.owner).Return(models.AccountsSnapshot{}, errors.New("timeout"))

	var op models.Operation
	f.expectJournal(&op)

	result := f.service.BankWithdraw(context.Background(), 7)
	assert.True(t, result.OK())
	assert.Equal(t, MsgWithdrawSuccess, requireSingleNotification(t, f.notifier).Message)
	assert.Equal(t, models.ActionBankWithdraw, op.Action)
}

func TestActionService_BankActions(t *testing.T) {
	f := newActionsFixture(t, true)
	f.connected()

	f.bank.EXPECT().Create(gomock.Any(), "savings").Return(solana.Signature{6}, nil)
	f.bank.EXPECT().Deposit(gomock.Any(), models.Lamports(9)).Return(solana.Signature{}, models.ErrInvalidAmount)
	f.accounts.EXPECT().Invalidate(gomock.Any(), f.owner).Return(nil).Times(1)
	f.journal.EXPECT().SaveOperation(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	created := f.service.CreateBank(context.Background(), "savings")
	assert.Equal(t, MsgBankCreateSuccess, created.Message)

	deposited := f.service.BankDeposit(context.Background(), 9)
	assert.Equal(t, "Deposit failed: invalid amount", deposited.Message)

	assert.Len(t, drain(f.notifier), 2)
}

func TestActionService_JournalFailureIsNotFatal(t *testing.T) {
	f := newActionsFixture(t, true)
	f.connected()

	f.vault.EXPECT().Initialize(gomock.Any()).Return(solana.Signature{7}, nil)
	f.accounts.EXPECT().Invalidate(gomock.Any(), f.owner).Return(nil)
	f.journal.EXPECT().SaveOperation(gomock.Any(), gomock.Any()).Return(errors.New("read-only database"))

	result := f.service.InitializeVault(context.Background())
	assert.True(t, result.OK())
	requireSingleNotification(t, f.notifier)
}

// ── wallet, accounts, journal ──

func TestActionService_ConnectWallet(t *testing.T) {
	f := newActionsFixture(t, true)

	f.wallet.EXPECT().Connect(gomock.Any()).Return(f.owner, nil)
	var op models.Operation
	f.expectJournal(&op)

	owner, err := f.service.ConnectWallet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, f.owner, owner)
	assert.Equal(t, MsgWalletConnected+": "+f.owner.String(), requireSingleNotification(t, f.notifier).Message)
	assert.Equal(t, models.ActionConnectWallet, op.Action)

	f.wallet.EXPECT().Connect(gomock.Any()).Return(solana.PublicKey{}, wallet.ErrNoKeypairPath)
	f.expectJournal(&op)

	_, err = f.service.ConnectWallet(context.Background())
	assert.ErrorIs(t, err, wallet.ErrNoKeypairPath)
	n := requireSingleNotification(t, f.notifier)
	assert.Equal(t, models.LevelError, n.Level)
	assert.Contains(t, n.Message, MsgWalletConnectError)
	assert.Equal(t, models.StatusFailed, op.Status)

	f.wallet.EXPECT().Disconnect()
	f.service.DisconnectWallet(context.Background())
	assert.Equal(t, MsgWalletDisconnected, requireSingleNotification(t, f.notifier).Message)
}

func TestActionService_Accounts(t *testing.T) {
	f := newActionsFixture(t, true)
	f.connected()

	snapshot := models.AccountsSnapshot{Owner: f.owner}
	f.accounts.EXPECT().List(gomock.Any(), f.owner).Return(snapshot, nil)
	f.accounts.EXPECT().Refresh(gomock.Any(), f.owner).Return(models.AccountsSnapshot{}, errors.New("timeout"))

	got, err := f.service.Accounts(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
	assert.Empty(t, drain(f.notifier))

	_, err = f.service.Accounts(context.Background(), true)
	assert.Error(t, err)
	assert.Equal(t, MsgFetchFailure+": timeout", requireSingleNotification(t, f.notifier).Message)
}

func TestActionService_Accounts_NoWallet(t *testing.T) {
	f := newActionsFixture(t, true)
	f.wallet.EXPECT().PublicKey().Return(solana.PublicKey{}, false)

	_, err := f.service.Accounts(context.Background(), false)
	assert.ErrorIs(t, err, ErrWalletNotConnected)
	assert.Equal(t, MsgConnectWallet, requireSingleNotification(t, f.notifier).Message)
}

func TestActionService_Operations(t *testing.T) {
	f := newActionsFixture(t, true)

	ops := []models.Operation{{ID: "1"}}
	f.wallet.EXPECT().PublicKey().Return(f.owner, true)
	f.journal.EXPECT().ListOperations(gomock.Any(), f.owner.String(), uint64(10)).Return(ops, nil)

	got, err := f.service.Operations(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, ops, got)

	f.wallet.EXPECT().PublicKey().Return(solana.PublicKey{}, false)
	f.journal.EXPECT().ListOperations(gomock.Any(), "", uint64(0)).Return(nil, nil)
	_, err = f.service.Operations(context.Background(), 0)
	require.NoError(t, err)
}

// ── end to end over a mocked RPC node ──

type stackFixture struct {
	rpc       *mock.MockRPCAdapter
	wallet    *wallet.KeypairWallet
	snapshots *mock.MockSnapshotRepository
	journal   *mock.MockOperationRepository
	notifier  Notifier
	actions   ActionService
}

func newStackFixture(t *testing.T, w *wallet.KeypairWallet) stackFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := stackFixture{
		rpc:       mock.NewMockRPCAdapter(ctrl),
		wallet:    w,
		snapshots: mock.NewMockSnapshotRepository(ctrl),
		journal:   mock.NewMockOperationRepository(ctrl),
		notifier:  NewNotifier(8, logger.Nop()),
	}

	sender := NewTransactionSender(f.rpc, w, rpc.CommitmentConfirmed, time.Millisecond, logger.Nop())
	vault := NewVaultService(program.NewVault(program.DefaultVaultProgramID), sender, f.rpc, rpc.CommitmentConfirmed, logger.Nop())
	bank := NewBankService(program.NewBank(program.DefaultBankProgramID), sender, f.rpc, rpc.CommitmentConfirmed, logger.Nop())
	accounts := NewAccountService(f.rpc, vault, program.DefaultBankProgramID, rpc.CommitmentConfirmed, f.snapshots, logger.Nop())
	f.actions = NewActionService(w, f.rpc, vault, bank, accounts, f.notifier, f.journal, logger.Nop())
	return f
}

func TestActions_DisconnectedWalletSendsNothing(t *testing.T) {
	f := newStackFixture(t, wallet.NewKeypairWallet("", logger.Nop()))
	f.journal.EXPECT().SaveOperation(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	f.actions.Deposit(context.Background(), 100_000_000)
	f.actions.CreateBank(context.Background(), "savings")
	f.actions.BankWithdraw(context.Background(), 1)

	notifications := drain(f.notifier)
	require.Len(t, notifications, 3)
	for _, n := range notifications {
		assert.Equal(t, MsgConnectWallet, n.Message)
	}
}

func TestActions_DepositRecoversUninitializedVault(t *testing.T) {
	w := wallet.NewConnectedWallet(solana.NewWallet().PrivateKey, logger.Nop())
	f := newStackFixture(t, w)
	owner, _ := w.PublicKey()

	notInitialized := simulationFailure(0)

	gomock.InOrder(
		expectSubmit(t, f.rpc, "deposit", notInitialized),
		expectSubmit(t, f.rpc, "initialize", nil),
		f.rpc.EXPECT().GetSignatureStatuses(gomock.Any(), gomock.Any()).Return(status(rpc.ConfirmationStatusConfirmed), nil),
	)
	f.snapshots.EXPECT().MarkStale(gomock.Any(), owner).Return(nil)

	var op models.Operation
	f.journal.EXPECT().SaveOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved models.Operation) error {
			op = saved
			return nil
		}).Times(1)

	result := f.actions.Deposit(context.Background(), 100_000_000)
	assert.True(t, result.OK())
	assert.True(t, result.Recovered)

	n := requireSingleNotification(t, f.notifier)
	assert.Equal(t, "Vault not initialized. Vault initialized successfully!", n.Message)
	assert.Equal(t, models.StatusNeedsInitialization, op.Status)
	assert.Equal(t, models.ActionVaultDeposit, op.Action)
	assert.Equal(t, owner.String(), op.Owner)
}

func TestActions_WithdrawRefreshesAccounts(t *testing.T) {
	w := wallet.NewConnectedWallet(solana.NewWallet().PrivateKey, logger.Nop())
	f := newStackFixture(t, w)
	owner, _ := w.PublicKey()

	gomock.InOrder(
		expectSubmit(t, f.rpc, "withdraw", nil),
		f.rpc.EXPECT().GetSignatureStatuses(gomock.Any(), gomock.Any()).Return(status(rpc.ConfirmationStatusFinalized), nil),
		f.snapshots.EXPECT().MarkStale(gomock.Any(), owner).Return(nil),
		f.rpc.EXPECT().GetProgramAccounts(gomock.Any(), program.DefaultBankProgramID, gomock.Any(), gomock.Any()).Return(nil, nil).Times(1),
	)
	f.rpc.EXPECT().GetAccountInfo(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, adapter.ErrAccountNotFound)
	f.rpc.EXPECT().GetBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Lamports(0), nil)
	f.snapshots.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.journal.EXPECT().SaveOperation(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	result := f.actions.Withdraw(context.Background(), 100_000_000)
	assert.True(t, result.OK())
	assert.Equal(t, MsgWithdrawSuccess, requireSingleNotification(t, f.notifier).Message)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sol-vault/internal/adapter"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/mock"
	"github.com/MKhiriev/go-sol-vault/internal/program"
	"github.com/MKhiriev/go-sol-vault/models"
)

// instructionNamed matches a single instruction whose data starts with the
// discriminator of name.
type instructionNamed string

func (m instructionNamed) Matches(x any) bool {
	ix, ok := x.(solana.Instruction)
	if !ok {
		return false
	}
	data, err := ix.Data()
	if err != nil || len(data) < 8 {
		return false
	}
	disc := program.InstructionDiscriminator(string(m))
	return string(data[:8]) == string(disc[:])
}

func (m instructionNamed) String() string {
	return fmt.Sprintf("is a %s instruction", string(m))
}

type vaultFixture struct {
	sender  *mock.MockTransactionSender
	rpc     *mock.MockRPCAdapter
	service VaultService
	owner   solana.PublicKey
}

func newVaultFixture(t *testing.T) vaultFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	senderMock := mock.NewMockTransactionSender(ctrl)
	rpcMock := mock.NewMockRPCAdapter(ctrl)

	return vaultFixture{
		sender:  senderMock,
		rpc:     rpcMock,
		service: NewVaultService(program.NewVault(program.DefaultVaultProgramID), senderMock, rpcMock, rpc.CommitmentConfirmed, logger.Nop()),
		owner:   solana.NewWallet().PublicKey(),
	}
}

// ── Initialize / Deposit / Withdraw ──

func TestVaultService_Initialize(t *testing.T) {
	f := newVaultFixture(t)
	sig := solana.Signature{1}

	f.sender.EXPECT().Payer().Return(f.owner, nil)
	f.sender.EXPECT().Send(gomock.Any(), instructionNamed("initialize")).Return(sig, nil)

	got, err := f.service.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sig, got)
}

func TestVaultService_Deposit(t *testing.T) {
	tests := []struct {
		name       string
		sendErr    error
		wantStatus models.OperationStatus
	}{
		{"success", nil, models.StatusSuccess},
		{"not initialized", &models.ProgramError{Code: 0, Instruction: 0}, models.StatusNeedsInitialization},
		{"anchor not initialized", &models.ProgramError{Code: 3012, Instruction: 0}, models.StatusNeedsInitialization},
		{"other program error", &models.ProgramError{Code: 1, Instruction: 0}, models.StatusFailed},
		{"transport error", adapter.ErrServiceUnavailable, models.StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVaultFixture(t)

			f.sender.EXPECT().Payer().Return(f.owner, nil)
			f.sender.EXPECT().Send(gomock.Any(), instructionNamed("deposit")).Return(solana.Signature{2}, tt.sendErr)

			result := f.service.Deposit(context.Background(), 100_000_000)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.False(t, result.Recovered)
			if tt.sendErr != nil {
				assert.ErrorIs(t, result.Err, tt.sendErr)
			} else {
				assert.Equal(t, solana.Signature{2}, result.Signature)
			}
		})
	}
}

func TestVaultService_Deposit_ZeroAmount(t *testing.T) {
	f := newVaultFixture(t)

	result := f.service.Deposit(context.Background(), 0)
	assert.Equal(t, models.StatusFailed, result.Status)
	assert.ErrorIs(t, result.Err, models.ErrInvalidAmount)
}

func TestVaultService_Deposit_NoWallet(t *testing.T) {
	f := newVaultFixture(t)

	f.sender.EXPECT().Payer().Return(solana.PublicKey{}, ErrWalletNotConnected)

	result := f.service.Deposit(context.Background(), 1)
	assert.ErrorIs(t, result.Err, ErrWalletNotConnected)
}

func TestVaultService_Withdraw(t *testing.T) {
	f := newVaultFixture(t)

	f.sender.EXPECT().Payer().Return(f.owner, nil)
	f.sender.EXPECT().Send(gomock.Any(), instructionNamed("withdraw")).Return(solana.Signature{3}, nil)

	sig, err := f.service.Withdraw(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, solana.Signature{3}, sig)

	_, err = f.service.Withdraw(context.Background(), 0)
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}

// ── DepositOrInitialize ──

func TestVaultService_DepositOrInitialize_Recovers(t *testing.T) {
	f := newVaultFixture(t)
	initSig := solana.Signature{9}

	f.sender.EXPECT().Payer().Return(f.owner, nil).Times(2)
	gomock.InOrder(
		f.sender.EXPECT().Send(gomock.Any(), instructionNamed("deposit")).
			Return(solana.Signature{}, &models.ProgramError{Code: 0}).Times(1),
		f.sender.EXPECT().Send(gomock.Any(), instructionNamed("initialize")).
			Return(initSig, nil).Times(1),
	)

	result := f.service.DepositOrInitialize(context.Background(), 100_000_000)
	assert.True(t, result.Recovered)
	assert.True(t, result.OK())
	assert.Equal(t, initSig, result.Signature)
}

func TestVaultService_DepositOrInitialize_InitializeFails(t *testing.T) {
	f := newVaultFixture(t)
	initErr := errors.New("insufficient funds for rent")

	f.sender.EXPECT().Payer().Return(f.owner, nil).Times(2)
	gomock.InOrder(
		f.sender.EXPECT().Send(gomock.Any(), instructionNamed("deposit")).Return(solana.Signature{}, &models.ProgramError{Code: 3012}),
		f.sender.EXPECT().Send(gomock.Any(), instructionNamed("initialize")).Return(solana.Signature{}, initErr),
	)

	result := f.service.DepositOrInitialize(context.Background(), 1)
	assert.True(t, result.Recovered)
	assert.Equal(t, models.StatusFailed, result.Status)
	assert.ErrorIs(t, result.Err, initErr)
}

func TestVaultService_DepositOrInitialize_PassesThrough(t *testing.T) {
	f := newVaultFixture(t)

	f.sender.EXPECT().Payer().Return(f.owner, nil)
	f.sender.EXPECT().Send(gomock.Any(), instructionNamed("deposit")).Return(solana.Signature{}, &models.ProgramError{Code: 1})

	result := f.service.DepositOrInitialize(context.Background(), 1)
	assert.False(t, result.Recovered)
	assert.Equal(t, models.StatusFailed, result.Status)
}

// ── State ──

func TestVaultService_State(t *testing.T) {
	f := newVaultFixture(t)
	addrs, err := f.service.Addresses(f.owner)
	require.NoError(t, err)

	f.rpc.EXPECT().GetAccountInfo(gomock.Any(), addrs.State, rpc.CommitmentConfirmed).Return(accountWithData(
		1_000_000,
		program.EncodeVaultState(models.VaultState{VaultBump: addrs.VaultBump, StateBump: addrs.StateBump}),
	), nil)
	f.rpc.EXPECT().GetBalance(gomock.Any(), addrs.Vault, rpc.CommitmentConfirmed).Return(models.Lamports(2_500_000_000), nil)

	info, err := f.service.State(context.Background(), f.owner)
	require.NoError(t, err)
	assert.True(t, info.Initialized)
	require.NotNil(t, info.State)
	assert.Equal(t, addrs.VaultBump, info.State.VaultBump)
	assert.Equal(t, models.Lamports(2_500_000_000), info.Balance)
	assert.Equal(t, addrs, info.Addresses)
}

func TestVaultService_State_NotInitialized(t *testing.T) {
	f := newVaultFixture(t)

	f.rpc.EXPECT().GetAccountInfo(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: state", adapter.ErrAccountNotFound))
	f.rpc.EXPECT().GetBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Lamports(0), nil)

	info, err := f.service.State(context.Background(), f.owner)
	require.NoError(t, err)
	assert.False(t, info.Initialized)
	assert.Nil(t, info.State)
}

func TestVaultService_State_Errors(t *testing.T) {
	f := newVaultFixture(t)

	f.rpc.EXPECT().GetAccountInfo(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, adapter.ErrBadGateway)
	_, err := f.service.State(context.Background(), f.owner)
	assert.ErrorIs(t, err, adapter.ErrBadGateway)

	f.rpc.EXPECT().GetAccountInfo(gomock.Any(), gomock.Any(), gomock.Any()).Return(accountWithData(0, []byte{1, 2, 3}), nil)
	_, err = f.service.State(context.Background(), f.owner)
	assert.ErrorIs(t, err, program.ErrInvalidAccountData)

	noProvider := NewVaultService(program.NewVault(program.DefaultVaultProgramID), f.sender, nil, "", logger.Nop())
	_, err = noProvider.State(context.Background(), f.owner)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

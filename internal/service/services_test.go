package service

import (
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sol-vault/internal/config"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/mock"
	"github.com/MKhiriev/go-sol-vault/internal/program"
	"github.com/MKhiriev/go-sol-vault/internal/store"
	"github.com/MKhiriev/go-sol-vault/internal/wallet"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		SnapshotRepository:  mock.NewMockSnapshotRepository(ctrl),
		OperationRepository: mock.NewMockOperationRepository(ctrl),
	}
	w := wallet.NewConnectedWallet(solana.NewWallet().PrivateKey, logger.Nop())

	cfg := Config{
		App: config.ClientApp{
			VaultProgramID: program.DefaultVaultProgramID,
			BankProgramID:  program.DefaultBankProgramID,
			Commitment:     rpc.CommitmentFinalized,
		},
		Adapter: config.ClientAdapter{ConfirmPollInterval: time.Second},
		Workers: config.ClientWorkers{RefreshInterval: time.Minute},
	}

	services := NewServices(cfg, mock.NewMockRPCAdapter(ctrl), w, storages, logger.Nop())
	require.NotNil(t, services)
	assert.NotNil(t, services.Actions)
	assert.NotNil(t, services.Notifier)
	assert.NotNil(t, services.RefreshJob)

	sender, ok := services.Sender.(*transactionSender)
	require.True(t, ok)
	assert.Equal(t, rpc.CommitmentFinalized, sender.commitment)
	assert.Equal(t, time.Second, sender.pollInterval)

	payer, err := services.Sender.Payer()
	require.NoError(t, err)
	owner, _ := w.PublicKey()
	assert.Equal(t, owner, payer)
}

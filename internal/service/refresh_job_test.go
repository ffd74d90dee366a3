package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/wallet"
	"github.com/MKhiriev/go-sol-vault/models"
)

// spyAccounts counts Refresh calls.
type spyAccounts struct {
	refreshes atomic.Int32
	owner     atomic.Value
}

func (s *spyAccounts) List(context.Context, solana.PublicKey) (models.AccountsSnapshot, error) {
	return models.AccountsSnapshot{}, nil
}

func (s *spyAccounts) Refresh(_ context.Context, owner solana.PublicKey) (models.AccountsSnapshot, error) {
	s.owner.Store(owner)
	s.refreshes.Add(1)
	return models.AccountsSnapshot{Owner: owner}, nil
}

func (s *spyAccounts) Invalidate(context.Context, solana.PublicKey) error {
	return nil
}

func TestAccountRefreshJob_RefreshesConnectedOwner(t *testing.T) {
	spy := &spyAccounts{}
	w := wallet.NewConnectedWallet(solana.NewWallet().PrivateKey, logger.Nop())
	owner, _ := w.PublicKey()

	job := NewAccountRefreshJob(spy, w, 5*time.Millisecond, logger.Nop())
	job.Start(context.Background())
	defer job.Stop()

	assert.Eventually(t, func() bool { return spy.refreshes.Load() >= 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, owner, spy.owner.Load())
}

func TestAccountRefreshJob_SkipsWithoutWallet(t *testing.T) {
	spy := &spyAccounts{}
	job := NewAccountRefreshJob(spy, wallet.NewKeypairWallet("", logger.Nop()), 2*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.refreshes.Load())
}

func TestAccountRefreshJob_StopHaltsTicks(t *testing.T) {
	spy := &spyAccounts{}
	w := wallet.NewConnectedWallet(solana.NewWallet().PrivateKey, logger.Nop())

	job := NewAccountRefreshJob(spy, w, 2*time.Millisecond, logger.Nop())
	job.Start(context.Background())
	assert.Eventually(t, func() bool { return spy.refreshes.Load() >= 1 }, time.Second, 2*time.Millisecond)

	job.Stop()
	stopped := spy.refreshes.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, spy.refreshes.Load())

	// a second Stop is a no-op
	job.Stop()
}

func TestAccountRefreshJob_RestartAndContextCancel(t *testing.T) {
	spy := &spyAccounts{}
	w := wallet.NewConnectedWallet(solana.NewWallet().PrivateKey, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job := NewAccountRefreshJob(spy, w, 2*time.Millisecond, logger.Nop())
	job.Start(ctx)
	job.Start(ctx)
	assert.Eventually(t, func() bool { return spy.refreshes.Load() >= 1 }, time.Second, 2*time.Millisecond)

	cancel()
	job.Stop()
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/wallet"
)

const defaultRefreshInterval = time.Minute

type accountRefreshJob struct {
	accounts AccountService
	wallet   wallet.Wallet
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewAccountRefreshJob creates a job that refreshes the connected owner's
// accounts every interval. Ticks while no wallet is connected are skipped.
func NewAccountRefreshJob(accounts AccountService, w wallet.Wallet, interval time.Duration, logger *logger.Logger) AccountRefreshJob {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &accountRefreshJob{accounts: accounts, wallet: w, interval: interval, logger: logger}
}

// Start stops a running job and launches a new one bound to ctx.
func (j *accountRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *accountRefreshJob) tick(ctx context.Context) {
	owner, ok := j.wallet.PublicKey()
	if !ok {
		return
	}
	if _, err := j.accounts.Refresh(ctx, owner); err != nil && ctx.Err() == nil {
		j.logger.Warn().Err(err).Str("owner", owner.String()).Msg("scheduled account refresh failed")
	}
}

// Stop cancels the job and waits for it to exit. Safe to call when idle.
func (j *accountRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

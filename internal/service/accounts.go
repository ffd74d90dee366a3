package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/MKhiriev/go-sol-vault/internal/adapter"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/program"
	"github.com/MKhiriev/go-sol-vault/internal/store"
	"github.com/MKhiriev/go-sol-vault/models"
)

// accountService keeps snapshots in memory and mirrors them to the
// snapshot repository so a restarted client can show the last known view.
type accountService struct {
	rpc           adapter.RPCAdapter
	vaultService  VaultService
	bankProgramID solana.PublicKey
	commitment    rpc.CommitmentType
	snapshots     store.SnapshotRepository

	mu    sync.RWMutex
	cache map[solana.PublicKey]models.AccountsSnapshot
	now   func() time.Time

	logger *logger.Logger
}

func NewAccountService(rpcAdapter adapter.RPCAdapter, vaultService VaultService, bankProgramID solana.PublicKey, commitment rpc.CommitmentType, snapshots store.SnapshotRepository, logger *logger.Logger) AccountService {
	if bankProgramID.IsZero() {
		bankProgramID = program.DefaultBankProgramID
	}
	return &accountService{
		rpc:           rpcAdapter,
		vaultService:  vaultService,
		bankProgramID: bankProgramID,
		commitment:    commitment,
		snapshots:     snapshots,
		cache:         make(map[solana.PublicKey]models.AccountsSnapshot),
		now:           time.Now,
		logger:        logger,
	}
}

func (s *accountService) List(ctx context.Context, owner solana.PublicKey) (models.AccountsSnapshot, error) {
	s.mu.RLock()
	snapshot, ok := s.cache[owner]
	s.mu.RUnlock()
	if ok && !snapshot.Stale {
		return snapshot, nil
	}

	if !ok {
		stored, err := s.snapshots.GetSnapshot(ctx, owner)
		switch {
		case err == nil && !stored.Stale:
			s.remember(stored)
			return stored, nil
		case err != nil && !errors.Is(err, store.ErrSnapshotNotFound):
			s.logger.Warn().Err(err).Str("owner", owner.String()).Msg("stored snapshot unavailable, refreshing")
		}
	}

	return s.Refresh(ctx, owner)
}

func (s *accountService) Refresh(ctx context.Context, owner solana.PublicKey) (models.AccountsSnapshot, error) {
	if s.rpc == nil {
		return models.AccountsSnapshot{}, ErrProviderUnavailable
	}

	banks, err := s.fetchBanks(ctx)
	if err != nil {
		return models.AccountsSnapshot{}, err
	}

	vault, err := s.vaultService.State(ctx, owner)
	if err != nil {
		return models.AccountsSnapshot{}, err
	}

	snapshot := models.AccountsSnapshot{
		Owner:     owner,
		Vault:     vault,
		Banks:     banks,
		FetchedAt: s.now().UTC(),
	}
	s.remember(snapshot)

	if err = s.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
		s.logger.Err(err).Str("owner", owner.String()).Msg("failed to persist account snapshot")
	}

	s.logger.Debug().
		Str("owner", owner.String()).
		Int("banks", len(banks)).
		Bool("vault_initialized", vault.Initialized).
		Msg("accounts refreshed")
	return snapshot, nil
}

// fetchBanks lists every Bank account of the bank program. Accounts that
// fail to decode are logged and skipped.
func (s *accountService) fetchBanks(ctx context.Context) ([]models.BankAccount, error) {
	filters := []rpc.RPCFilter{{Memcmp: &rpc.RPCFilterMemcmp{Offset: 0, Bytes: solana.Base58(program.BankDiscriminator[:])}}}

	keyed, err := s.rpc.GetProgramAccounts(ctx, s.bankProgramID, filters, s.commitment)
	if err != nil {
		return nil, fmt.Errorf("get bank accounts: %w", err)
	}

	banks := make([]models.BankAccount, 0, len(keyed))
	for _, account := range keyed {
		if account == nil || account.Account == nil {
			continue
		}
		bank, err := program.DecodeBank(account.Pubkey, accountData(account.Account))
		if err != nil {
			s.logger.Warn().Err(err).Str("address", account.Pubkey.String()).Msg("skipping undecodable bank account")
			continue
		}
		bank.Lamports = models.Lamports(account.Account.Lamports)
		banks = append(banks, bank)
	}

	sort.SliceStable(banks, func(i, j int) bool {
		if banks[i].Name != banks[j].Name {
			return banks[i].Name < banks[j].Name
		}
		return banks[i].Address.String() < banks[j].Address.String()
	})
	return banks, nil
}

func (s *accountService) Invalidate(ctx context.Context, owner solana.PublicKey) error {
	s.mu.Lock()
	if snapshot, ok := s.cache[owner]; ok {
		snapshot.Stale = true
		s.cache[owner] = snapshot
	}
	s.mu.Unlock()

	if err := s.snapshots.MarkStale(ctx, owner); err != nil {
		return fmt.Errorf("mark snapshot stale: %w", err)
	}
	return nil
}

func (s *accountService) remember(snapshot models.AccountsSnapshot) {
	s.mu.Lock()
	s.cache[snapshot.Owner] = snapshot
	s.mu.Unlock()
}

// accountData returns the decoded binary data of account, or nil.
func accountData(account *rpc.Account) []byte {
	if account == nil || account.Data == nil {
		return nil
	}
	return account.Data.GetBinary()
}

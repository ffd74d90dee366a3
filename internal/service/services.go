package service

import (
	"github.com/MKhiriev/go-sol-vault/internal/adapter"
	"github.com/MKhiriev/go-sol-vault/internal/config"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/program"
	"github.com/MKhiriev/go-sol-vault/internal/store"
	"github.com/MKhiriev/go-sol-vault/internal/wallet"
)

// Config is the part of the configuration the services need.
type Config struct {
	App     config.ClientApp
	Adapter config.ClientAdapter
	Workers config.ClientWorkers
}

type Services struct {
	Sender     TransactionSender
	Vault      VaultService
	Bank       BankService
	Accounts   AccountService
	Actions    ActionService
	Notifier   Notifier
	RefreshJob AccountRefreshJob
}

func NewServices(cfg Config, rpcAdapter adapter.RPCAdapter, connector wallet.Connector, storages *store.Storages, logger *logger.Logger) *Services {
	commitment := cfg.App.Commitment

	sender := NewTransactionSender(rpcAdapter, connector, commitment, cfg.Adapter.ConfirmPollInterval, logger)
	vaultSvc := NewVaultService(program.NewVault(cfg.App.VaultProgramID), sender, rpcAdapter, commitment, logger)
	bankSvc := NewBankService(program.NewBank(cfg.App.BankProgramID), sender, rpcAdapter, commitment, logger)
	accountSvc := NewAccountService(rpcAdapter, vaultSvc, cfg.App.BankProgramID, commitment, storages.SnapshotRepository, logger)
	notifier := NewNotifier(defaultNotificationBuffer, logger)

	return &Services{
		Sender:     sender,
		Vault:      vaultSvc,
		Bank:       bankSvc,
		Accounts:   accountSvc,
		Actions:    NewActionService(connector, rpcAdapter, vaultSvc, bankSvc, accountSvc, notifier, storages.OperationRepository, logger),
		Notifier:   notifier,
		RefreshJob: NewAccountRefreshJob(accountSvc, connector, cfg.Workers.RefreshInterval, logger),
	}
}

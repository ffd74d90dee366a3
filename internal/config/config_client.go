package config

import (
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// ClientApp holds the parsed application settings both binaries need.
type ClientApp struct {
	VaultProgramID solana.PublicKey
	BankProgramID  solana.PublicKey
	Commitment     rpc.CommitmentType
	KeypairPath    string
}

// ClientAdapter holds settings of the RPC transport.
type ClientAdapter struct {
	RPCURL              string
	RequestTimeout      time.Duration
	ConfirmPollInterval time.Duration
}

// ClientDB contains database connection settings.
type ClientDB struct {
	// DSN is a postgres:// URL or a SQLite file path.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	RefreshInterval time.Duration
}

// ClientConfig is the configuration of the terminal client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GatewayApp extends [ClientApp] with token settings.
type GatewayApp struct {
	ClientApp

	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Version       string
}

// GatewayConfig is the configuration of the HTTP/gRPC gateway.
type GatewayConfig struct {
	App     GatewayApp
	Adapter ClientAdapter
	Storage ClientStorage
	Server  Server
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client view of the merged
// configuration. args are the command-line arguments without the program
// name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// GetGatewayConfig builds and validates the gateway view of the merged
// configuration.
func GetGatewayConfig(args []string) (*GatewayConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newGatewayConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	app, err := newClientApp(cfg.App)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App:     app,
		Adapter: newClientAdapter(cfg.Adapter),
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}
	return clientCfg, nil
}

func newGatewayConfig(cfg *StructuredConfig) (*GatewayConfig, error) {
	app, err := newClientApp(cfg.App)
	if err != nil {
		return nil, err
	}

	gatewayCfg := &GatewayConfig{
		App: GatewayApp{
			ClientApp:     app,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Adapter: newClientAdapter(cfg.Adapter),
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		Server:  cfg.Server,
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	if err = gatewayCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating gateway config: %w", err)
	}
	return gatewayCfg, nil
}

func newClientApp(app App) (ClientApp, error) {
	vaultID, err := parseProgramID(app.VaultProgramID)
	if err != nil {
		return ClientApp{}, fmt.Errorf("%w: vault program id: %w", ErrInvalidAppConfigs, err)
	}
	bankID, err := parseProgramID(app.BankProgramID)
	if err != nil {
		return ClientApp{}, fmt.Errorf("%w: bank program id: %w", ErrInvalidAppConfigs, err)
	}

	return ClientApp{
		VaultProgramID: vaultID,
		BankProgramID:  bankID,
		Commitment:     rpc.CommitmentType(app.Commitment),
		KeypairPath:    app.KeypairPath,
	}, nil
}

func newClientAdapter(a Adapter) ClientAdapter {
	return ClientAdapter{
		RPCURL:              a.RPCURL,
		RequestTimeout:      a.RequestTimeout,
		ConfirmPollInterval: a.ConfirmPollInterval,
	}
}

// parseProgramID returns the zero key for an empty string so that the
// program package falls back to the deployed id.
func parseProgramID(s string) (solana.PublicKey, error) {
	if s == "" {
		return solana.PublicKey{}, nil
	}
	return solana.PublicKeyFromBase58(s)
}

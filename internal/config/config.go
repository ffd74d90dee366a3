// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the gateway. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds program identifiers, wallet and token settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the RPC endpoint and transport timings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the database used for account snapshots and the
	// operation journal.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses of the gateway.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// VaultProgramID is the base58 address of the vault program.
	// Env: APP_VAULT_PROGRAM_ID
	VaultProgramID string `env:"VAULT_PROGRAM_ID"`

	// BankProgramID is the base58 address of the bank program.
	// Env: APP_BANK_PROGRAM_ID
	BankProgramID string `env:"BANK_PROGRAM_ID"`

	// Commitment is the confirmation level awaited after every send:
	// "processed", "confirmed" or "finalized".
	// Env: APP_COMMITMENT
	Commitment string `env:"COMMITMENT"`

	// KeypairPath points at a Solana CLI keypair file used as the wallet.
	// Env: APP_KEYPAIR_PATH
	KeypairPath string `env:"KEYPAIR_PATH"`

	// TokenSignKey signs gateway bearer tokens. When empty the gateway
	// serves requests without authentication.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by the gateway's version endpoint when no build
	// version was linked in.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings of the RPC transport.
type Adapter struct {
	// RPCURL is the JSON-RPC endpoint of a Solana node.
	// Env: ADAPTER_RPC_URL
	RPCURL string `env:"RPC_URL"`

	// RequestTimeout bounds a single RPC round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ConfirmPollInterval is the delay between signature status polls
	// while awaiting confirmation.
	// Env: ADAPTER_CONFIRM_POLL_INTERVAL
	ConfirmPollInterval time.Duration `env:"CONFIRM_POLL_INTERVAL"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is either a postgres:// URL or a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds gateway listen addresses.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP gateway listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" the gRPC gateway listens on.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the connected owner's accounts are
	// re-read from the chain. Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// defaultConfig is the lowest-priority source.
func defaultConfig() *StructuredConfig {
	keypair := ""
	if home, err := os.UserHomeDir(); err == nil {
		keypair = filepath.Join(home, ".config", "solana", "id.json")
	}

	return &StructuredConfig{
		App: App{
			VaultProgramID: "CatTg5QoJNvZFcKiL3aQGBeuiE3i1F2GZRUj1qZCWYuN",
			BankProgramID:  "3rN9H3eepjWo9BmgVTg98XpvX8nfVqcYjXzkvdpEvwJP",
			Commitment:     "confirmed",
			KeypairPath:    keypair,
			TokenIssuer:    "go-sol-vault",
			TokenDuration:  24 * time.Hour,
		},
		Adapter: Adapter{
			RPCURL:              "https://api.devnet.solana.com",
			RequestTimeout:      30 * time.Second,
			ConfirmPollInterval: 500 * time.Millisecond,
		},
		Storage: Storage{
			DB: DB{DSN: "go-sol-vault.db"},
		},
		Server: Server{
			RequestTimeout: time.Minute,
		},
		Workers: Workers{
			RefreshInterval: time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

package config

import (
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructuredConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Server.HTTPAddress = "localhost:8080"
	return cfg
}

func TestNewClientConfig(t *testing.T) {
	cfg, err := newClientConfig(validStructuredConfig())
	require.NoError(t, err)

	assert.Equal(t, solana.MustPublicKeyFromBase58("CatTg5QoJNvZFcKiL3aQGBeuiE3i1F2GZRUj1qZCWYuN"), cfg.App.VaultProgramID)
	assert.Equal(t, solana.MustPublicKeyFromBase58("3rN9H3eepjWo9BmgVTg98XpvX8nfVqcYjXzkvdpEvwJP"), cfg.App.BankProgramID)
	assert.Equal(t, rpc.CommitmentConfirmed, cfg.App.Commitment)
	assert.Equal(t, "https://api.devnet.solana.com", cfg.Adapter.RPCURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Adapter.ConfirmPollInterval)
	assert.Equal(t, "go-sol-vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestNewClientConfig_EmptyProgramIDFallsBackToZero(t *testing.T) {
	sc := validStructuredConfig()
	sc.App.BankProgramID = ""

	cfg, err := newClientConfig(sc)
	require.NoError(t, err)
	assert.True(t, cfg.App.BankProgramID.IsZero())
}

func TestNewClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{"bad program id", func(cfg *StructuredConfig) { cfg.App.VaultProgramID = "not-base58!" }, ErrInvalidAppConfigs},
		{"unknown commitment", func(cfg *StructuredConfig) { cfg.App.Commitment = "max" }, ErrInvalidAppConfigs},
		{"empty rpc url", func(cfg *StructuredConfig) { cfg.Adapter.RPCURL = "" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"zero poll interval", func(cfg *StructuredConfig) { cfg.Adapter.ConfirmPollInterval = 0 }, ErrInvalidAdapterConfigs},
		{"empty dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := validStructuredConfig()
			tt.mutate(sc)

			_, err := newClientConfig(sc)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewGatewayConfig(t *testing.T) {
	sc := validStructuredConfig()
	sc.App.TokenSignKey = "secret"
	sc.App.Version = "1.0.0"

	cfg, err := newGatewayConfig(sc)
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "go-sol-vault", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, rpc.CommitmentConfirmed, cfg.App.Commitment)
}

func TestNewGatewayConfig_Invalid(t *testing.T) {
	sc := validStructuredConfig()
	sc.Server.HTTPAddress = ""
	_, err := newGatewayConfig(sc)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)

	sc = validStructuredConfig()
	sc.App.TokenSignKey = "secret"
	sc.App.TokenDuration = 0
	_, err = newGatewayConfig(sc)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

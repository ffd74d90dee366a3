// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/gagliardetto/solana-go/rpc"
)

// validate checks invariants shared by every view of the merged config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateApp(cfg.App); err != nil {
		return err
	}
	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *GatewayConfig) validate() error {
	if err := validateApp(cfg.App.ClientApp); err != nil {
		return err
	}
	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}
	if cfg.App.TokenSignKey != "" && (cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0) {
		return fmt.Errorf("%w: token issuer and duration are required with a sign key", ErrInvalidServerConfigs)
	}
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func validateApp(app ClientApp) error {
	switch app.Commitment {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
		return nil
	default:
		return fmt.Errorf("%w: unknown commitment %q", ErrInvalidAppConfigs, app.Commitment)
	}
}

func validateAdapter(a ClientAdapter) error {
	if a.RPCURL == "" || a.RequestTimeout <= 0 || a.ConfirmPollInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

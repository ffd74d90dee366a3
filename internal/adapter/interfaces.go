// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to a Solana RPC node.
//
// The primary abstraction is [RPCAdapter], the narrow slice of [rpc.Client]
// the service layer needs. [NewJSONRPCAdapter] runs rpc.Client over a
// resty-backed JSON-RPC transport.
//
// Errors are mapped so callers can use [errors.Is] and [errors.As]: HTTP
// status codes become the sentinels in errors.go, JSON-RPC error objects
// become [*RPCError] wrapping the library's jsonrpc error, and missing
// accounts become [ErrAccountNotFound].
package adapter

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/MKhiriev/go-sol-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/rpc_adapter_mock.go -package=mock

// RPCAdapter is the subset of the Solana JSON-RPC API used by the client.
type RPCAdapter interface {
	// GetLatestBlockhash returns a recent blockhash and the last block
	// height at which a transaction using it is still valid.
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.LatestBlockhashResult, error)

	// SendTransaction submits a signed transaction, base64 encoded, with
	// preflight simulation at commitment. Simulation failures come back as
	// [*RPCError] carrying the program logs.
	SendTransaction(ctx context.Context, tx *solana.Transaction, commitment rpc.CommitmentType) (solana.Signature, error)

	// GetSignatureStatuses returns one entry per signature; an entry is nil
	// when the node has not seen the transaction yet.
	GetSignatureStatuses(ctx context.Context, signatures []solana.Signature) ([]*rpc.SignatureStatusesResult, error)

	// GetBlockHeight returns the current block height at commitment.
	GetBlockHeight(ctx context.Context, commitment rpc.CommitmentType) (uint64, error)

	// GetProgramAccounts returns every account owned by programID matching
	// all filters.
	GetProgramAccounts(ctx context.Context, programID solana.PublicKey, filters []rpc.RPCFilter, commitment rpc.CommitmentType) (rpc.GetProgramAccountsResult, error)

	// GetAccountInfo returns [ErrAccountNotFound] when the account does not
	// exist.
	GetAccountInfo(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.Account, error)

	// GetBalance returns the lamport balance of account.
	GetBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (models.Lamports, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/MKhiriev/go-sol-vault/internal/adapter"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/wallet"
)

const defaultPollInterval = 500 * time.Millisecond

type transactionSender struct {
	rpc          adapter.RPCAdapter
	wallet       wallet.Wallet
	commitment   rpc.CommitmentType
	pollInterval time.Duration

	logger *logger.Logger
}

func NewTransactionSender(rpcAdapter adapter.RPCAdapter, w wallet.Wallet, commitment rpc.CommitmentType, pollInterval time.Duration, logger *logger.Logger) TransactionSender {
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &transactionSender{
		rpc:          rpcAdapter,
		wallet:       w,
		commitment:   commitment,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

func (s *transactionSender) Payer() (solana.PublicKey, error) {
	if s.wallet == nil {
		return solana.PublicKey{}, ErrWalletNotConnected
	}
	payer, ok := s.wallet.PublicKey()
	if !ok {
		return solana.PublicKey{}, ErrWalletNotConnected
	}
	if s.rpc == nil {
		return solana.PublicKey{}, ErrProviderUnavailable
	}
	return payer, nil
}

func (s *transactionSender) Send(ctx context.Context, instructions ...solana.Instruction) (solana.Signature, error) {
	payer, err := s.Payer()
	if err != nil {
		return solana.Signature{}, err
	}

	blockhash, err := s.rpc.GetLatestBlockhash(ctx, s.commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("get latest blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(instructions, blockhash.Blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return solana.Signature{}, fmt.Errorf("build transaction: %w", err)
	}

	if err = s.wallet.SignTransaction(ctx, tx); err != nil {
		if errors.Is(err, wallet.ErrNotConnected) {
			return solana.Signature{}, ErrWalletNotConnected
		}
		return solana.Signature{}, fmt.Errorf("sign transaction: %w", err)
	}

	sig, err := s.rpc.SendTransaction(ctx, tx, s.commitment)
	if err != nil {
		s.logger.Debug().Err(err).Str("payer", payer.String()).Msg("transaction rejected")
		return solana.Signature{}, mapAdapterError(err)
	}
	s.logger.Debug().Str("signature", sig.String()).Msg("transaction submitted")

	if err = s.confirm(ctx, sig, blockhash.LastValidBlockHeight); err != nil {
		return sig, err
	}
	s.logger.Info().Str("signature", sig.String()).Str("commitment", string(s.commitment)).Msg("transaction confirmed")
	return sig, nil
}

// confirm polls the signature status until it reaches the commitment. The
// block height is only checked while the status is still pending.
func (s *transactionSender) confirm(ctx context.Context, sig solana.Signature, lastValidBlockHeight uint64) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		statuses, err := s.rpc.GetSignatureStatuses(ctx, []solana.Signature{sig})
		if err != nil {
			return fmt.Errorf("get signature status: %w", err)
		}
		if len(statuses) > 0 && statuses[0] != nil {
			status := statuses[0]
			if status.Err != nil {
				return statusError(status.Err)
			}
			if commitmentReached(status.ConfirmationStatus, s.commitment) {
				return nil
			}
		}

		height, err := s.rpc.GetBlockHeight(ctx, s.commitment)
		if err != nil {
			return fmt.Errorf("get block height: %w", err)
		}
		if height > lastValidBlockHeight {
			return ErrBlockhashExpired
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func commitmentRank(level string) int {
	switch level {
	case string(rpc.CommitmentProcessed):
		return 1
	case string(rpc.CommitmentConfirmed):
		return 2
	case string(rpc.CommitmentFinalized):
		return 3
	default:
		return 0
	}
}

func commitmentReached(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	got := commitmentRank(string(status))
	return got > 0 && got >= commitmentRank(string(want))
}

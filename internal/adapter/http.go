package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/MKhiriev/go-sol-vault/internal/config"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/utils"
	"github.com/MKhiriev/go-sol-vault/models"
)

type solanaRPCAdapter struct {
	client *rpc.Client

	logger *logger.Logger
}

// NewJSONRPCAdapter constructs an [RPCAdapter] backed by [rpc.Client]
// posting to adapterCfg.RPCURL.
//
// Returns an error if the URL is empty or cannot be parsed.
func NewJSONRPCAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RPCAdapter, error) {
	endpoint, err := normalizeEndpoint(adapterCfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter rpc url: %w", err)
	}

	httpClient := utils.NewHTTPClient()
	httpClient.SetTimeout(adapterCfg.RequestTimeout)

	transport := newRestyJSONRPCClient(httpClient, endpoint, logger)
	return &solanaRPCAdapter{client: rpc.NewWithCustomRPCClient(transport), logger: logger}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

func (a *solanaRPCAdapter) GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.LatestBlockhashResult, error) {
	out, err := a.client.GetLatestBlockhash(ctx, commitment)
	if err != nil {
		return nil, err
	}
	if out == nil || out.Value == nil {
		return nil, fmt.Errorf("%w: getLatestBlockhash returned no value", ErrInvalidResponse)
	}
	return out.Value, nil
}

func (a *solanaRPCAdapter) SendTransaction(ctx context.Context, tx *solana.Transaction, commitment rpc.CommitmentType) (solana.Signature, error) {
	return a.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		Encoding:            solana.EncodingBase64,
		PreflightCommitment: commitment,
	})
}

func (a *solanaRPCAdapter) GetSignatureStatuses(ctx context.Context, signatures []solana.Signature) ([]*rpc.SignatureStatusesResult, error) {
	out, err := a.client.GetSignatureStatuses(ctx, false, signatures...)
	if err != nil {
		return nil, err
	}
	if len(out.Value) != len(signatures) {
		return nil, fmt.Errorf("%w: getSignatureStatuses returned %d statuses for %d signatures", ErrInvalidResponse, len(out.Value), len(signatures))
	}
	return out.Value, nil
}

func (a *solanaRPCAdapter) GetBlockHeight(ctx context.Context, commitment rpc.CommitmentType) (uint64, error) {
	return a.client.GetBlockHeight(ctx, commitment)
}

func (a *solanaRPCAdapter) GetProgramAccounts(ctx context.Context, programID solana.PublicKey, filters []rpc.RPCFilter, commitment rpc.CommitmentType) (rpc.GetProgramAccountsResult, error) {
	return a.client.GetProgramAccountsWithOpts(ctx, programID, &rpc.GetProgramAccountsOpts{
		Commitment: commitment,
		Encoding:   solana.EncodingBase64,
		Filters:    filters,
	})
}

func (a *solanaRPCAdapter) GetAccountInfo(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.Account, error) {
	out, err := a.client.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: commitment,
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, account)
	}
	if err != nil {
		return nil, err
	}
	return out.Value, nil
}

func (a *solanaRPCAdapter) GetBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (models.Lamports, error) {
	out, err := a.client.GetBalance(ctx, account, commitment)
	if err != nil {
		return 0, err
	}
	if out == nil {
		return 0, fmt.Errorf("%w: getBalance returned no value", ErrInvalidResponse)
	}
	return models.Lamports(out.Value), nil
}

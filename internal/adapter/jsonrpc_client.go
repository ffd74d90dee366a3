package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/utils"
)

const jsonRPCVersion = "2.0"

// restyJSONRPCClient is the transport under [rpc.Client]. Requests go out
// through the shared resty client, so HTTP failures become the sentinels in
// errors.go and node errors become [*RPCError].
type restyJSONRPCClient struct {
	client   *utils.HTTPClient
	endpoint string
	nextID   atomic.Uint64

	logger *logger.Logger
}

var _ rpc.JSONRPCClient = (*restyJSONRPCClient)(nil)

func newRestyJSONRPCClient(client *utils.HTTPClient, endpoint string, logger *logger.Logger) *restyJSONRPCClient {
	return &restyJSONRPCClient{client: client, endpoint: endpoint, logger: logger}
}

func (c *restyJSONRPCClient) newRequest(method string, params []any) *jsonrpc.RPCRequest {
	req := &jsonrpc.RPCRequest{
		JSONRPC: jsonRPCVersion,
		ID:      c.nextID.Add(1),
		Method:  method,
	}
	if params != nil {
		req.Params = params
	}
	return req
}

func (c *restyJSONRPCClient) post(ctx context.Context, body any) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

func (c *restyJSONRPCClient) CallForInto(ctx context.Context, out any, method string, params []any) error {
	resp, err := c.post(ctx, c.newRequest(method, params)).Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("%s request: %w", method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	var envelope jsonrpc.RPCResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, method, err)
	}
	if envelope.Error != nil {
		c.logger.Debug().
			Str("method", method).
			Int("code", envelope.Error.Code).
			Str("message", envelope.Error.Message).
			Msg("rpc call returned an error")
		return &RPCError{Method: method, Err: envelope.Error}
	}

	if err = envelope.GetObject(out); err != nil {
		return fmt.Errorf("%w: decode %s result: %w", ErrInvalidResponse, method, err)
	}
	return nil
}

func (c *restyJSONRPCClient) CallWithCallback(ctx context.Context, method string, params []any, callback func(*http.Request, *http.Response) error) error {
	resp, err := c.post(ctx, c.newRequest(method, params)).
		SetDoNotParseResponse(true).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("%s request: %w", method, err)
	}
	defer resp.RawBody().Close()

	return callback(resp.Request.RawRequest, resp.RawResponse)
}

func (c *restyJSONRPCClient) CallBatch(ctx context.Context, requests jsonrpc.RPCRequests) (jsonrpc.RPCResponses, error) {
	if len(requests) == 0 {
		return nil, errors.New("empty request list")
	}
	for i, req := range requests {
		req.ID = i
		req.JSONRPC = jsonRPCVersion
	}

	resp, err := c.post(ctx, requests).Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("batch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	var responses jsonrpc.RPCResponses
	if err = json.Unmarshal(resp.Body(), &responses); err != nil {
		return nil, fmt.Errorf("%w: batch: %w", ErrInvalidResponse, err)
	}
	return responses, nil
}

package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-sol-vault/models"
)

// Client is a gRPC client of the gateway service.
type Client struct {
	conn  *grpc.ClientConn
	token string
}

// NewClient connects to a gateway. token, when not empty, is sent as a
// bearer token with every call.
func NewClient(addr, token string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithDefaultCallOptions(grpc.ForceCodec(JSONCodec{})),
	}, opts...)

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc client: %w", err)
	}
	return &Client{conn: conn, token: token}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) Initialize(ctx context.Context) (models.OperationResponse, error) {
	var resp models.OperationResponse
	err := c.invoke(ctx, "Initialize", &Empty{}, &resp)
	return resp, err
}

func (c *Client) Deposit(ctx context.Context, amount string) (models.OperationResponse, error) {
	var resp models.OperationResponse
	err := c.invoke(ctx, "Deposit", &models.AmountRequest{Amount: amount}, &resp)
	return resp, err
}

func (c *Client) Withdraw(ctx context.Context, amount string) (models.OperationResponse, error) {
	var resp models.OperationResponse
	err := c.invoke(ctx, "Withdraw", &models.AmountRequest{Amount: amount}, &resp)
	return resp, err
}

func (c *Client) CreateBank(ctx context.Context, name string) (models.OperationResponse, error) {
	var resp models.OperationResponse
	err := c.invoke(ctx, "CreateBank", &models.CreateBankRequest{Name: name}, &resp)
	return resp, err
}

func (c *Client) ListAccounts(ctx context.Context, refresh bool) (models.AccountsSnapshot, error) {
	var resp models.AccountsSnapshot
	err := c.invoke(ctx, "ListAccounts", &models.ListAccountsRequest{Refresh: refresh}, &resp)
	return resp, err
}

func (c *Client) invoke(ctx context.Context, method string, req, resp any) error {
	if c.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
	}
	return c.conn.Invoke(ctx, fullMethod(method), req, resp)
}

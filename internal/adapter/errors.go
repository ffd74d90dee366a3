package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("rpc endpoint unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("rpc endpoint not found")
	ErrTooManyRequests     = errors.New("rpc endpoint rate limited")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("rpc endpoint unavailable")
	ErrInternalServerError = errors.New("rpc endpoint internal error")

	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidResponse = errors.New("invalid rpc response")
)

// RPCError is a JSON-RPC error object returned by the node for Method.
// For failed preflight simulations Err.Data holds
// {"err": <TransactionError>, "logs": [...]}.
type RPCError struct {
	Method string
	Err    *jsonrpc.RPCError
}

func (e *RPCError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: rpc error", e.Method)
	}
	return fmt.Sprintf("%s: rpc error %d: %s", e.Method, e.Err.Code, strings.TrimSpace(e.Err.Message))
}

func (e *RPCError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

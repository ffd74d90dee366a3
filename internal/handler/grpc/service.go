package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-sol-vault/models"
)

const serviceName = "vaultgateway.v1.VaultGateway"

// Empty is the request of methods without arguments.
type Empty struct{}

// VaultGatewayServer is the server-side interface of the gateway service.
type VaultGatewayServer interface {
	Initialize(context.Context, *Empty) (*models.OperationResponse, error)
	Deposit(context.Context, *models.AmountRequest) (*models.OperationResponse, error)
	Withdraw(context.Context, *models.AmountRequest) (*models.OperationResponse, error)
	CreateBank(context.Context, *models.CreateBankRequest) (*models.OperationResponse, error)
	ListAccounts(context.Context, *models.ListAccountsRequest) (*models.AccountsSnapshot, error)
}

// RegisterVaultGatewayServer registers srv on a gRPC server.
func RegisterVaultGatewayServer(s grpc.ServiceRegistrar, srv VaultGatewayServer) {
	s.RegisterService(&serviceDesc, srv)
}

func handlerInitialize(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(Empty)
	if err := dec(req); err != nil {
		return nil, err
	}
	call := func(ctx context.Context, req any) (any, error) {
		return srv.(VaultGatewayServer).Initialize(ctx, req.(*Empty))
	}
	return intercept(ctx, srv, req, "Initialize", interceptor, call)
}

func handlerDeposit(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(models.AmountRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	call := func(ctx context.Context, req any) (any, error) {
		return srv.(VaultGatewayServer).Deposit(ctx, req.(*models.AmountRequest))
	}
	return intercept(ctx, srv, req, "Deposit", interceptor, call)
}

func handlerWithdraw(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(models.AmountRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	call := func(ctx context.Context, req any) (any, error) {
		return srv.(VaultGatewayServer).Withdraw(ctx, req.(*models.AmountRequest))
	}
	return intercept(ctx, srv, req, "Withdraw", interceptor, call)
}

func handlerCreateBank(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(models.CreateBankRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	call := func(ctx context.Context, req any) (any, error) {
		return srv.(VaultGatewayServer).CreateBank(ctx, req.(*models.CreateBankRequest))
	}
	return intercept(ctx, srv, req, "CreateBank", interceptor, call)
}

func handlerListAccounts(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(models.ListAccountsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	call := func(ctx context.Context, req any) (any, error) {
		return srv.(VaultGatewayServer).ListAccounts(ctx, req.(*models.ListAccountsRequest))
	}
	return intercept(ctx, srv, req, "ListAccounts", interceptor, call)
}

// intercept runs call through the server's unary interceptor chain, if any.
func intercept(ctx context.Context, srv, req any, method string, interceptor grpc.UnaryServerInterceptor, call grpc.UnaryHandler) (any, error) {
	if interceptor == nil {
		return call(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
	return interceptor(ctx, req, info, call)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor of the gateway.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*VaultGatewayServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Initialize", Handler: handlerInitialize},
		{MethodName: "Deposit", Handler: handlerDeposit},
		{MethodName: "Withdraw", Handler: handlerWithdraw},
		{MethodName: "CreateBank", Handler: handlerCreateBank},
		{MethodName: "ListAccounts", Handler: handlerListAccounts},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vaultgateway/v1/service.json",
}

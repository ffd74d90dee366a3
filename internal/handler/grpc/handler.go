package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/internal/utils"
	"github.com/MKhiriev/go-sol-vault/models"
)

// Handler is the root gRPC transport handler. It implements
// [VaultGatewayServer] on top of the action service.
type Handler struct {
	services *service.Services

	// tokenSignKey enables bearer authentication when not empty.
	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Tokens are required only when
// tokenSignKey is set.
func NewHandler(services *service.Services, tokenSignKey, tokenIssuer string, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:     services,
		tokenSignKey: tokenSignKey,
		tokenIssuer:  tokenIssuer,
		logger:       logger,
	}
}

// Register installs the gateway service on s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	RegisterVaultGatewayServer(s, h)
}

// ServerOptions returns the interceptors the server must be built with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{grpc.ChainUnaryInterceptor(h.withLogging, h.auth)}
}

func (h *Handler) Initialize(ctx context.Context, _ *Empty) (*models.OperationResponse, error) {
	return operationResponse(h.services.Actions.InitializeVault(ctx))
}

func (h *Handler) Deposit(ctx context.Context, req *models.AmountRequest) (*models.OperationResponse, error) {
	amount, err := models.ParseSOL(req.Amount)
	if err != nil {
		return nil, statusFromError(err)
	}
	return operationResponse(h.services.Actions.Deposit(ctx, amount))
}

func (h *Handler) Withdraw(ctx context.Context, req *models.AmountRequest) (*models.OperationResponse, error) {
	amount, err := models.ParseSOL(req.Amount)
	if err != nil {
		return nil, statusFromError(err)
	}
	return operationResponse(h.services.Actions.Withdraw(ctx, amount))
}

func (h *Handler) CreateBank(ctx context.Context, req *models.CreateBankRequest) (*models.OperationResponse, error) {
	if err := service.ValidateBankName(req.Name); err != nil {
		return nil, statusFromError(err)
	}
	return operationResponse(h.services.Actions.CreateBank(ctx, req.Name))
}

func (h *Handler) ListAccounts(ctx context.Context, req *models.ListAccountsRequest) (*models.AccountsSnapshot, error) {
	snapshot, err := h.services.Actions.Accounts(ctx, req.Refresh)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &snapshot, nil
}

// operationResponse returns failed operations as a status error carrying
// the user-facing message.
func operationResponse(result models.OperationResult) (*models.OperationResponse, error) {
	if !result.OK() {
		return nil, status.Error(statusCode(result.Err), result.Message)
	}
	resp := models.NewOperationResponse(result)
	return &resp, nil
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	l := h.logger.GetChildLogger()
	ctx = l.WithContext(ctx)

	resp, err := next(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Send()
	return resp, err
}

func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	if h.tokenSignKey == "" {
		return next(ctx, req)
	}

	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing authorization metadata")
	}

	tokenString, err := utils.ParseBearerToken(values[0])
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("method", info.FullMethod).Msg("rejected token")
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return next(utils.WithSubject(ctx, token.Subject), req)
}

func statusFromError(err error) error {
	return status.Error(statusCode(err), err.Error())
}

func statusCode(err error) codes.Code {
	var programErr *models.ProgramError
	switch {
	case errors.Is(err, models.ErrInvalidAmount), errors.Is(err, models.ErrInvalidBankName):
		return codes.InvalidArgument
	case errors.Is(err, service.ErrWalletNotConnected), service.IsNotInitialized(err):
		return codes.FailedPrecondition
	case errors.Is(err, service.ErrProviderUnavailable):
		return codes.Unavailable
	case errors.Is(err, service.ErrBankNotFound):
		return codes.NotFound
	case errors.As(err, &programErr), errors.Is(err, service.ErrTransactionFailed):
		return codes.Aborted
	case errors.Is(err, service.ErrBlockhashExpired):
		return codes.DeadlineExceeded
	default:
		return codes.Unknown
	}
}

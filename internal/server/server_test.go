package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MKhiriev/go-sol-vault/internal/config"
	"github.com/MKhiriev/go-sol-vault/internal/handler"
	myGRPC "github.com/MKhiriev/go-sol-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/mock"
	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/models"
)

func newTestServer(t *testing.T, actions service.ActionService) *server {
	t.Helper()

	cfg := &config.GatewayConfig{
		Server: config.Server{
			HTTPAddress:    "127.0.0.1:0",
			GRPCAddress:    "127.0.0.1:0",
			RequestTimeout: 5 * time.Second,
		},
	}
	handlers, err := handler.NewHandlers(&service.Services{Actions: actions}, cfg, models.NewAppBuildInfo("1.2.3", "", ""), logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestServer_ServesBothTransports(t *testing.T) {
	actions := mock.NewMockActionService(gomock.NewController(t))
	s := newTestServer(t, actions)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	resp, err := http.Get("http://" + s.httpServer.listener.Addr().String() + "/api/version")
	require.NoError(t, err)
	var info models.AppBuildInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", info.Version)

	actions.EXPECT().InitializeVault(gomock.Any()).Return(models.OperationResult{Status: models.StatusSuccess})

	client, err := myGRPC.NewClient(s.gRPCServer.gRPCNetListener.Addr().String(), "", grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer client.Close()

	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()
	out, err := client.Initialize(callCtx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, out.Status)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop")
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoTransports)
}

func TestNewServer_ListenError(t *testing.T) {
	h := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, "", "", logger.Nop())}

	_, err := NewServer(h, config.Server{GRPCAddress: "256.0.0.1:bad"}, logger.Nop())
	assert.Error(t, err)
}

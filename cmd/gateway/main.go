package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-sol-vault/internal/adapter"
	"github.com/MKhiriev/go-sol-vault/internal/config"
	"github.com/MKhiriev/go-sol-vault/internal/handler"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/server"
	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/internal/store"
	"github.com/MKhiriev/go-sol-vault/internal/utils"
	"github.com/MKhiriev/go-sol-vault/internal/wallet"
	"github.com/MKhiriev/go-sol-vault/internal/workers"
	"github.com/MKhiriev/go-sol-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log := logger.NewLogger("go-sol-vault-gateway")

	// "gateway token <subject> [flags]" prints a bearer token and exits.
	if len(os.Args) > 2 && os.Args[1] == "token" {
		if err := printToken(os.Args[2], os.Args[3:]); err != nil {
			log.Fatal().Err(err).Msg("error issuing token")
		}
		return
	}

	fmt.Print(buildInfo)

	cfg, err := config.GetGatewayConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.Debug().
		Str("rpc", cfg.Adapter.RPCURL).
		Str("http", cfg.Server.HTTPAddress).
		Str("grpc", cfg.Server.GRPCAddress).
		Bool("auth", cfg.App.TokenSignKey != "").
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rpcAdapter, err := adapter.NewJSONRPCAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rpc adapter")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(service.Config{
		App:     cfg.App.ClientApp,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
	}, rpcAdapter, wallet.NewKeypairWallet(cfg.App.KeypairPath, log), storages, log)

	// The gateway signs with its configured keypair; without it every
	// operation answers "Please connect your wallet".
	if owner, err := services.Actions.ConnectWallet(ctx); err != nil {
		log.Warn().Err(err).Msg("wallet not connected")
	} else {
		log.Info().Str("owner", owner.String()).Msg("wallet connected")
	}

	var refresh workers.Worker
	if cfg.Workers.RefreshInterval > 0 {
		refresh = services.RefreshJob
	}
	jobs := workers.NewWorkers(refresh)
	jobs.Start(ctx)
	defer jobs.Stop()

	handlers, err := handler.NewHandlers(services, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printToken(subject string, args []string) error {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("token sign key is not configured")
	}

	token, err := utils.GenerateJWTToken(cfg.App.TokenIssuer, subject, cfg.App.TokenDuration, cfg.App.TokenSignKey)
	if err != nil {
		return err
	}

	fmt.Println(token.SignedString)
	return nil
}

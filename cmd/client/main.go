package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sol-vault/internal/adapter"
	"github.com/MKhiriev/go-sol-vault/internal/client"
	"github.com/MKhiriev/go-sol-vault/internal/config"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/internal/store"
	"github.com/MKhiriev/go-sol-vault/internal/tui"
	"github.com/MKhiriev/go-sol-vault/internal/wallet"
	"github.com/MKhiriev/go-sol-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewClientLogger("go-sol-vault-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	rpcAdapter, err := adapter.NewJSONRPCAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create rpc adapter")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewServices(service.Config{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
	}, rpcAdapter, wallet.NewKeypairWallet(cfg.App.KeypairPath, log), storages, log)

	app, err := client.NewApp(services, tui.New(services, buildInfo, log), cfg.Workers.RefreshInterval > 0, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

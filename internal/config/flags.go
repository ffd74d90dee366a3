package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a "host:port" flag value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads command-line flags from args (without the program
// name). Unknown flags are an error.
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var (
		rpcURL, databaseDSN, jsonConfigPath          string
		vaultProgramID, bankProgramID, commitment    string
		keypairPath, tokenSignKey, tokenIssuer       string
		tokenDuration, requestTimeout, serverTimeout time.Duration
		confirmPollInterval, refreshInterval         time.Duration
	)

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Gateway HTTP address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Gateway gRPC address host:port")
	fs.StringVar(&rpcURL, "rpc", "", "Solana JSON-RPC endpoint URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN (postgres URL or SQLite file)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&vaultProgramID, "vault-program", "", "Vault program id")
	fs.StringVar(&bankProgramID, "bank-program", "", "Bank program id")
	fs.StringVar(&commitment, "commitment", "", "Commitment level: processed, confirmed, finalized")
	fs.StringVar(&keypairPath, "keypair", "", "Wallet keypair file path")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "RPC request timeout (e.g., 30s)")
	fs.DurationVar(&confirmPollInterval, "confirm-poll-interval", 0, "Signature status poll interval (e.g., 500ms)")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Gateway request timeout (e.g., 1m)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Account refresh interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			VaultProgramID: vaultProgramID,
			BankProgramID:  bankProgramID,
			Commitment:     commitment,
			KeypairPath:    keypairPath,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		Adapter: Adapter{
			RPCURL:              rpcURL,
			RequestTimeout:      requestTimeout,
			ConfirmPollInterval: confirmPollInterval,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "go-sol-vault"
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

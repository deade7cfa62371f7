package main

import (
	"flag"
	"os"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"

	"github.com/zoralabs/coins-mcp/internal/chain"
	"github.com/zoralabs/coins-mcp/internal/coins"
	"github.com/zoralabs/coins-mcp/internal/config"
	"github.com/zoralabs/coins-mcp/internal/mcpserver"
	"github.com/zoralabs/coins-mcp/internal/tools"
	"github.com/zoralabs/coins-mcp/pkg/utils"
)

const (
	serverName    = "coins-mcp"
	serverVersion = "0.1.0"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file (optional)")
	flag.Parse()

	// Bootstrap logger for configuration loading; replaced once the log
	// config is known. Everything stays on stderr.
	bootLogger := logrus.New()
	bootLogger.SetOutput(os.Stderr)

	cfg, err := config.Load(*configPath, bootLogger)
	if err != nil {
		bootLogger.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.ConfigureLogger(cfg.Log)

	env := &tools.Env{
		ServerName:       serverName,
		ServerVersion:    serverVersion,
		ChainID:          cfg.Chain.ID,
		RPCURL:           cfg.Chain.RPCURL,
		APIKeyConfigured: cfg.API.Key != "",
		Query:            coins.NewHTTPClient(cfg.API.BaseURL, cfg.API.Key, logger),
	}

	if cfg.Chain.PrivateKey != "" {
		signer, err := chain.NewSigner(cfg.Chain.PrivateKey)
		if err != nil {
			logger.Fatalf("Invalid private key: %v", err)
		}

		client, err := ethclient.Dial(cfg.Chain.RPCURL)
		if err != nil {
			logger.Fatalf("Failed to connect to RPC endpoint %s: %v", cfg.Chain.RPCURL, err)
		}

		writer, err := chain.NewWriter(client, signer, cfg.Chain.ID, logger)
		if err != nil {
			logger.Fatalf("Failed to initialize chain writer: %v", err)
		}

		env.Signer = signer
		env.Write = writer
		logger.WithField("wallet", signer.Address.Hex()).Info("Write tools enabled")
	} else {
		logger.Info("No private key configured; write tools are disabled")
	}

	registry, err := tools.BuildRegistry(env)
	if err != nil {
		logger.Fatalf("Failed to build tool registry: %v", err)
	}

	dispatcher := tools.NewDispatcher(registry, env, logger)
	srv := mcpserver.New(serverName, serverVersion, registry, dispatcher, logger)

	logger.WithFields(logrus.Fields{
		"tools":            registry.Len(),
		"chainId":          cfg.Chain.ID,
		"rpcUrl":           cfg.Chain.RPCURL,
		"apiKeyConfigured": cfg.API.Key != "",
		"walletConfigured": env.Signer != nil,
	}).Info("Starting coins MCP server")

	if err := srv.ServeStdio(); err != nil {
		logger.Fatalf("Server error: %v", err)
	}
}

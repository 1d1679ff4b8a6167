package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/expense-atlas/pkg/handlers/report"
	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/server"
	"github.com/fin-tools/expense-atlas/pkg/services/config"
	"github.com/fin-tools/expense-atlas/pkg/services/dataset"
	"github.com/fin-tools/expense-atlas/pkg/services/loader"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Expense Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "expense-atlas.yaml",
		"Path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	granularity, err := domain.ParseGranularity(cfg.Granularity)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	source := &loader.FileSource{Path: cfg.DataFile}
	txs, err := source.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", cfg.DataFile, err)
	}

	store := dataset.NewStore()
	store.Replace(txs, cfg.DataFile)
	logger.Info().
		Int("transactions", len(txs)).
		Str("file", cfg.DataFile).
		Msg("dataset loaded")

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Reports: report.NewHandler(store, source, cfg.DataFile, granularity),
			Logger:  logger,
		},
	})

	return api.Start()
}

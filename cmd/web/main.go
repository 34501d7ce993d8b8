package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
	"github.com/fin-tools/report-atlas/pkg/server"
	"github.com/fin-tools/report-atlas/pkg/services/config"
	"github.com/fin-tools/report-atlas/pkg/services/dashboard"
	"github.com/fin-tools/report-atlas/pkg/store/client"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the report dashboard web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "server.yaml",
		"Path to the server configuration file")

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

	cfg, err := config.LoadServerConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Upstream report backend: %s", cfg.UpstreamURL)

	explorer := dashboard.NewExplorer(client.NewReportClient(domain.Endpoint{
		BaseURL: cfg.UpstreamURL,
		Token:   cfg.UpstreamToken,
	}))

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Dashboard: explorer,
			Logger:    logger,
		},
	})

	return api.Start()
}

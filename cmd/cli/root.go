package main

import (
	"fmt"

	"codetext-backend/internal/config"
	"codetext-backend/internal/services"
	"codetext-backend/internal/store"
	"codetext-backend/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

// RootCmd is the codetext command line entry point.
var RootCmd = &cobra.Command{
	Use:   "codetext",
	Short: "Share text under a short code and read it back.",
	Long: `codetext stores text in the configured share store and prints a
6-character code; anyone with access to the same store can read it back.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the YAML configuration file")
}

// openService loads configuration and opens the share store. The caller must
// close the returned store.
func openService() (*services.ShareService, store.Store, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Only errors are logged on the command line.
	cfg.Log.Level = "error"
	cfg.Log.File = ""
	logger.Init(cfg.Log)

	st, err := store.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}

	return services.NewShareService(st, cfg.Share), st, nil
}

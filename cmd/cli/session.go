package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tally.com/internal/application/usecase"
	"tally.com/internal/infrastructure/config"
	"tally.com/internal/infrastructure/console"
	"tally.com/internal/infrastructure/logger"
	"tally.com/internal/infrastructure/repository"
	"tally.com/internal/infrastructure/validator"
)

const sessionDir = "session"

var configDir string //nolint:gochecknoglobals

var sessionCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "session",
	Short: "Fill the warehouse, then move items in and out of a basket.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Load configuration
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Initialize logger; the console owns stdout
		sessionLogger := logger.NewLogger(os.Stderr, cfg.Log.Level).WithSessionID(uuid.New().String())
		ctx := context.Background()

		sessionLogger.LogInfo(ctx, "Configuration loaded",
			"config_dir", configDir,
			"stop_word", cfg.Session.StopWord,
			"log_level", cfg.Log.Level)

		// Initialize infrastructure adapters
		movementValidator := validator.NewMovementValidator(sessionLogger)
		ledger := repository.NewInMemoryLedger(sessionLogger)
		basket := repository.NewInMemoryBasket(ledger, sessionLogger)

		// Initialize use cases
		fillWarehouseUseCase := usecase.NewFillWarehouseUseCase(movementValidator, ledger)
		transferUseCase := usecase.NewTransferUseCase(movementValidator, basket)
		getContentsUseCase := usecase.NewGetContentsUseCase(ledger, basket)

		handler := console.NewHandler(
			fillWarehouseUseCase,
			transferUseCase,
			getContentsUseCase,
			console.Options{
				StopWord:     cfg.Session.StopWord,
				StoreHeader:  cfg.Display.StoreHeader,
				BasketHeader: cfg.Display.BasketHeader,
			},
			sessionLogger,
		)

		return handler.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() { //nolint:gochecknoinits
	sessionCmd.Flags().StringVar(&configDir, "config-dir",
		filepath.Join("cmd", "config", sessionDir), "directory holding app-config.yaml and <CONFIG_ENV>.yaml")
	rootCmd.AddCommand(sessionCmd)
}

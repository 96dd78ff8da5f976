package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"msgmerge/internal/application"
	"msgmerge/internal/config"
	"msgmerge/internal/infrastructure/database"
	"msgmerge/internal/infrastructure/storage"
	"msgmerge/internal/ports/input"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Replace the PostgreSQL mirror with the store file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context(), func(ctx context.Context, svc input.SyncUseCase) (*input.MergeReport, string, error) {
			report, err := svc.Push(ctx)
			return report, "Store pushed to mirror", err
		})
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Rewrite the store file from the PostgreSQL mirror",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context(), func(ctx context.Context, svc input.SyncUseCase) (*input.MergeReport, string, error) {
			report, err := svc.Pull(ctx)
			return report, "Store pulled from mirror", err
		})
	},
}

func runSync(ctx context.Context, run func(context.Context, input.SyncUseCase) (*input.MergeReport, string, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("sync: DATABASE_URL is required for push/pull")
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	defer pool.Close()

	svc := newSyncService(cfg, pool)
	report, headline, err := run(ctx, svc)
	if err != nil {
		return err
	}
	printSummary(headline, report)
	return nil
}

func newSyncService(cfg *config.Config, pool *pgxpool.Pool) input.SyncUseCase {
	return application.NewSyncService(
		storage.NewFileRepository(),
		database.NewMessageRepository(pool),
		cfg.MessagesPath,
	)
}

func init() {
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(pullCmd)
}

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"msgmerge/internal/application"
	"msgmerge/internal/config"
	"msgmerge/internal/infrastructure/batch"
	"msgmerge/internal/infrastructure/storage"
	"msgmerge/internal/ports/input"
)

var (
	storePath  string
	baseLocale string
)

var rootCmd = &cobra.Command{
	Use:   "msgmerge",
	Short: "Maintain a multi-locale messages.json store",
	Long: `msgmerge is the maintenance tool for the messages.json locale store
(locale code → message key → text).

Commands:
  add        - merge a single-locale additions batch
  translate  - merge a multi-locale translations batch
  fmt        - rewrite the store in canonical order
  status     - report per-locale coverage against the base locale
  render     - resolve one key the way the application would
  push/pull  - sync the store with the PostgreSQL mirror`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. The returned error has already been phase-tagged
// (load/merge/save/report/sync) by the layer that failed.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "path", "", "store path (default: MESSAGES_PATH or src/i18n/messages.json)")
	rootCmd.PersistentFlags().StringVar(&baseLocale, "base", "", "base locale (default: BASE_LOCALE or en)")
}

// loadConfig resolves env configuration, with flags taking precedence.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Override(storePath, baseLocale); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newMergeService(cfg *config.Config) input.MergeUseCase {
	return application.NewMergeService(
		storage.NewFileRepository(),
		batch.NewFileLoader(),
		cfg.MessagesPath,
	)
}

// printSummary prints the headline count, then per-locale totals.
func printSummary(headline string, report *input.MergeReport) {
	fmt.Printf("✅ %s\n", headline)
	fmt.Println("New totals:")

	locales := make([]string, 0, len(report.Totals))
	for locale := range report.Totals {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	for _, locale := range locales {
		fmt.Printf("  %-6s: %d keys\n", locale, report.Totals[locale])
	}
}

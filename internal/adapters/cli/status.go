package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"msgmerge/internal/application"
	"msgmerge/internal/infrastructure/storage"
	"msgmerge/internal/ports/input"
)

var statusFormat string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report per-locale key coverage against the base locale",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		svc := application.NewStatusService(storage.NewFileRepository(), cfg.MessagesPath)
		report, err := svc.Report(cfg.BaseLocale)
		if err != nil {
			return err
		}

		switch statusFormat {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		case "text":
			printStatus(report)
			return nil
		default:
			return fmt.Errorf("report: unsupported format %q (want text or json)", statusFormat)
		}
	},
}

func printStatus(report *input.StoreStatus) {
	fmt.Printf("Base locale: %s (%d keys)\n", report.BaseLocale, report.BaseKeys)
	for _, locale := range report.Locales {
		fmt.Printf("  %-6s: %d keys, %.1f%% complete", locale.Locale, locale.Keys, locale.Completion)
		if locale.Missing > 0 {
			fmt.Printf(", %d missing", locale.Missing)
		}
		if locale.Extra > 0 {
			fmt.Printf(", %d extra", locale.Extra)
		}
		if n := len(locale.PlaceholderMismatches); n > 0 {
			fmt.Printf(", %d placeholder mismatches", n)
		}
		fmt.Println()

		for _, key := range locale.MissingKeys {
			fmt.Printf("    missing  %s\n", key)
		}
		for _, key := range locale.ExtraKeys {
			fmt.Printf("    extra    %s\n", key)
		}
		for _, key := range locale.PlaceholderMismatches {
			fmt.Printf("    tokens   %s\n", key)
		}
	}
}

func init() {
	statusCmd.Flags().StringVar(&statusFormat, "format", "text", "output format: text, json")
	rootCmd.AddCommand(statusCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var translateBatchPath string

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Merge a multi-locale translations batch into the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		report, err := newMergeService(cfg).AddTranslations(translateBatchPath)
		if err != nil {
			return err
		}

		headline := fmt.Sprintf("Added translations for %d entries", report.Stats.Added)
		if report.Stats.Overwritten > 0 {
			headline += fmt.Sprintf(" (%d overwritten)", report.Stats.Overwritten)
		}
		printSummary(headline, report)
		return nil
	},
}

func init() {
	translateCmd.Flags().StringVar(&translateBatchPath, "batch", "", "translations batch file (.json or .toml)")
	translateCmd.MarkFlagRequired("batch")
	rootCmd.AddCommand(translateCmd)
}

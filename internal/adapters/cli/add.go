package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addBatchPath string

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Merge a single-locale additions batch into the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		report, err := newMergeService(cfg).AddKeys(addBatchPath)
		if err != nil {
			return err
		}

		headline := fmt.Sprintf("Added %d keys", report.Stats.Added)
		if report.Stats.Overwritten > 0 {
			headline += fmt.Sprintf(" (%d overwritten)", report.Stats.Overwritten)
		}
		printSummary(headline, report)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addBatchPath, "batch", "", "additions batch file (.json or .toml)")
	addCmd.MarkFlagRequired("batch")
	rootCmd.AddCommand(addCmd)
}

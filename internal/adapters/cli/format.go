package cli

import (
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite the store in canonical order without changing content",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		report, err := newMergeService(cfg).Format()
		if err != nil {
			return err
		}

		printSummary("Store rewritten canonically", report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

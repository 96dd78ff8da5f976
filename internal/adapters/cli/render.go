package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	i18nrenderer "msgmerge/internal/infrastructure/i18n"
	"msgmerge/internal/infrastructure/storage"
)

var (
	renderLocale string
	renderData   []string
)

var renderCmd = &cobra.Command{
	Use:   "render KEY",
	Short: "Resolve one message key the way the application would",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := storage.NewFileRepository().Load(cfg.MessagesPath)
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}

		renderer, err := i18nrenderer.NewRenderer(store, cfg.BaseLocale)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		data, err := parseData(renderData)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		msg, err := renderer.Render(renderLocale, args[0], data)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		fmt.Println(msg)
		return nil
	},
}

// parseData turns repeated --data name=value flags into a template map.
func parseData(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	data := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --data %q (want name=value)", pair)
		}
		data[name] = value
	}
	return data, nil
}

func init() {
	renderCmd.Flags().StringVar(&renderLocale, "locale", "", "locale to resolve the key for (falls back to the base locale)")
	renderCmd.Flags().StringArrayVar(&renderData, "data", nil, "placeholder value as name=value (repeatable)")
	rootCmd.AddCommand(renderCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barisgit/snippets/config"
	"github.com/barisgit/snippets/internal/logging"
)

// AddGlobalFlags registers the flags every command understands
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringP("config", "c", "", "Configuration file (default: snippets.yaml if present)")
	root.PersistentFlags().String("env-file", ".env", "Environment file loaded before the configuration")
	root.PersistentFlags().String("log-level", "", "Override the configured log level")
}

// loadConfig loads the configuration selected by the global flags and sets
// up logging from it. An explicit --config must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	options := config.DefaultLoadOptions()
	options.Quiet = true

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		options.Path = path
		options.AllowMissing = false
	}
	if envFile, err := cmd.Flags().GetString("env-file"); err == nil {
		options.EnvFile = envFile
	}

	cfg, err := config.NewConfigManager(options).LoadConfig()
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	return cfg, nil
}

func getConfigPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.DefaultLoadOptions().Path
}

func version(cmd *cobra.Command) string {
	if v := cmd.Root().Version; v != "" {
		return v
	}
	return "dev"
}

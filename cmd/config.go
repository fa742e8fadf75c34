package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barisgit/snippets/config"
)

func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  "Validate, view, and create the snippets configuration file",
	}

	cmd.AddCommand(configValidateCmd())
	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configInitCmd())

	return cmd
}

func configValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate configuration file",
		Long:  "Validate the syntax and structure of a YAML or TOML configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigValidate,
	}

	cmd.Flags().Bool("strict", false, "Enable strict validation (fail on warnings)")

	return cmd
}

func configShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [config-file]",
		Short: "Show configuration information",
		Long:  "Display the effective configuration after defaults and environment overrides",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigShow,
	}

	cmd.Flags().Bool("verbose", false, "Show the full effective configuration")

	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [config-file]",
		Short: "Initialize a new configuration file",
		Long:  "Create a configuration file with default values. The format follows the extension (.yaml or .toml)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite existing configuration file")
	cmd.Flags().String("router", "nethttp", "Router ("+strings.Join(config.ValidRouters, ", ")+")")
	cmd.Flags().Int("port", 3000, "Server port")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configPath := getConfigPath(args)
	strict, _ := cmd.Flags().GetBool("strict")

	fmt.Fprintf(out, "🔍 Validating configuration file: %s\n", configPath)

	cm := config.NewConfigManager(config.ConfigLoadOptions{
		Path:              configPath,
		AllowMissing:      false,
		ValidateStructure: true,
		ApplyDefaults:     true,
		Quiet:             true,
	})

	cfg, err := cm.LoadConfigFromPath(configPath)
	if err != nil {
		fmt.Fprintf(out, "❌ Configuration validation failed:\n%v\n", err)
		return err
	}

	fmt.Fprintf(out, "✅ Configuration is valid!\n")
	fmt.Fprintf(out, "\n%s\n", config.Info(configPath, cfg).String())

	if strict {
		issues := checkConfigIssues(cfg)
		if len(issues) > 0 {
			fmt.Fprintf(out, "\n⚠️  Potential issues found:\n")
			for i, issue := range issues {
				fmt.Fprintf(out, "  %d. %s\n", i+1, issue)
			}
			return fmt.Errorf("strict validation failed due to %d issue(s)", len(issues))
		}
	}

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configPath := getConfigPath(args)
	verbose, _ := cmd.Flags().GetBool("verbose")

	options := config.DefaultLoadOptions()
	options.Path = configPath
	options.Quiet = true

	cfg, err := config.NewConfigManager(options).LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Fprintf(out, "%s\n", config.Info(configPath, cfg).String())

	if verbose {
		data, err := config.Marshal(configPath, config.Redacted(cfg))
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}

		lang := "yaml"
		if strings.HasSuffix(configPath, ".toml") {
			lang = "toml"
		}
		fmt.Fprintf(out, "\n📝 Detailed Configuration:\n")
		fmt.Fprintf(out, "```%s\n%s```\n", lang, string(data))
	}

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configPath := getConfigPath(args)
	force, _ := cmd.Flags().GetBool("force")
	router, _ := cmd.Flags().GetString("router")
	port, _ := cmd.Flags().GetInt("port")

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s\nUse --force to overwrite", configPath)
		}
	}

	cfg := config.DefaultConfig()
	cfg.Server.Router = router
	cfg.Server.Port = port
	if errs := config.Validate(cfg); errs.HasErrors() {
		return errs
	}

	data, err := config.Marshal(configPath, cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(out, "✅ Created configuration file: %s\n", configPath)
	fmt.Fprintf(out, "   Router: %s\n", router)
	fmt.Fprintf(out, "   Address: %s\n", cfg.Server.Address())

	return nil
}

func checkConfigIssues(cfg *config.Config) []string {
	var issues []string

	if cfg.Server.Port == 3000 {
		issues = append(issues, "Using default port 3000 - consider changing if running multiple services")
	}

	if cfg.Server.Host == "0.0.0.0" || cfg.Server.Host == "" {
		issues = append(issues, "Listening on all interfaces - make sure this is intended")
	}

	if cfg.Log.Level == "trace" || cfg.Log.Level == "debug" {
		issues = append(issues, fmt.Sprintf("Log level '%s' is verbose for production", cfg.Log.Level))
	}

	if cfg.Publish.DatabaseURL != "" && !strings.HasPrefix(cfg.Publish.DatabaseURL, "postgres") {
		issues = append(issues, "publish.database_url does not look like a postgres URL")
	}

	return issues
}

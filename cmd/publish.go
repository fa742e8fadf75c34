package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barisgit/snippets/config"
	"github.com/barisgit/snippets/internal/publish"
	"github.com/barisgit/snippets/snippets"
)

func PublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upsert the registry into Postgres",
		Long: `Create the snippet table if needed and upsert every snippet in one
transaction. The database URL comes from --database-url, publish.database_url
or SNIPPETS_DATABASE_URL.`,
		Args: cobra.NoArgs,
		RunE: runPublish,
	}

	cmd.Flags().String("database-url", "", "Postgres connection URL")
	cmd.Flags().String("table", "", "Target table (default: publish.table from configuration)")
	cmd.Flags().Bool("dry-run", false, "Print the statements and row count without connecting")

	return cmd
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if url, _ := cmd.Flags().GetString("database-url"); url != "" {
		cfg.Publish.DatabaseURL = url
	}
	if table, _ := cmd.Flags().GetString("table"); table != "" {
		cfg.Publish.Table = table
	}
	if errs := config.Validate(cfg); errs.HasErrors() {
		return errs
	}

	out := cmd.OutOrStdout()
	reg := snippets.Default()

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		publisher := publish.NewPublisher(nil, cfg.Publish.Table)
		fmt.Fprintf(out, "📝 %s;\n\n", publisher.CreateTableSQL())
		fmt.Fprintf(out, "📝 %s;\n\n", publisher.UpsertSQL())
		fmt.Fprintf(out, "✅ Would upsert %d row(s) into %s\n", len(publish.Rows(reg)), cfg.Publish.Table)
		return nil
	}

	if cfg.Publish.DatabaseURL == "" {
		return fmt.Errorf("no database URL configured\n\nSet --database-url, publish.database_url or %s", config.EnvDatabaseURL)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	conn, err := publish.Connect(ctx, cfg.Publish.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	count, err := publish.NewPublisher(conn, cfg.Publish.Table).Publish(ctx, reg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ Published %d row(s) into %s\n", count, cfg.Publish.Table)
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barisgit/snippets/config"
	"github.com/barisgit/snippets/internal/export"
	"github.com/barisgit/snippets/snippets"
)

func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the registry to disk",
		Long:  "Export every component as JSON, YAML or Markdown documents, optionally with the raw snippet files",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}

	cmd.Flags().StringP("dir", "o", "", "Output directory (default: export.dir from configuration)")
	cmd.Flags().StringSliceP("format", "f", nil, "Formats to write: "+strings.Join(config.ValidFormats, ", "))
	cmd.Flags().Bool("raw", false, "Also write each snippet as its own file")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		cfg.Export.Dir = dir
	}
	if formats, _ := cmd.Flags().GetStringSlice("format"); len(formats) > 0 {
		cfg.Export.Formats = formats
	}
	if errs := config.Validate(cfg); errs.HasErrors() {
		return errs
	}
	raw, _ := cmd.Flags().GetBool("raw")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📦 Exporting to %s (%s)\n", cfg.Export.Dir, strings.Join(cfg.Export.Formats, ", "))

	result, err := export.Write(snippets.Default(), cfg.Export.Dir, cfg.Export.Formats, raw)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	for _, file := range result.Files {
		fmt.Fprintf(out, "  • %s\n", file)
	}
	fmt.Fprintf(out, "✅ Wrote %d file(s)\n", len(result.Files))
	return nil
}

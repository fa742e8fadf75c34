package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barisgit/snippets/openapi"
	"github.com/barisgit/snippets/snippets"
)

func OpenAPICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Generate the OpenAPI document",
		Long:  "Generate the OpenAPI document of the snippet API without starting a server",
		Args:  cobra.NoArgs,
		RunE:  runOpenAPI,
	}

	cmd.Flags().StringP("output", "o", "", "Write to file (.json or .yaml) instead of stdout")
	cmd.Flags().Bool("yaml", false, "Print YAML instead of JSON to stdout")

	return cmd
}

func runOpenAPI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	humaAPI := openapi.Build(snippets.Default(), cfg.Server.APIPrefix, version(cmd))

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := openapi.GenerateSpecToFile(humaAPI, output); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote OpenAPI document with %d route(s) to %s\n", openapi.GetRouteCount(humaAPI), output)
		return nil
	}

	var spec []byte
	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		spec, err = openapi.GenerateSpecYAML(humaAPI)
	} else {
		spec, err = openapi.GenerateSpec(humaAPI)
	}
	if err != nil {
		return fmt.Errorf("failed to generate OpenAPI document: %w", err)
	}

	cmd.OutOrStdout().Write(spec)
	return nil
}

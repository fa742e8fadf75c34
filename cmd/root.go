package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd assembles the snippets CLI
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "snippets",
		Short: "Snippets - component documentation content",
		Long: `Snippets serves, prints and exports the installation commands, CLI
invocations, usage examples and source variants of documented UI components.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "📚 Snippets CLI v"+version)
			fmt.Fprintln(cmd.OutOrStdout(), "Run 'snippets --help' for available commands")
		},
	}

	AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(ListCmd())
	rootCmd.AddCommand(ShowCmd())
	rootCmd.AddCommand(ExportCmd())
	rootCmd.AddCommand(PublishCmd())
	rootCmd.AddCommand(OpenAPICmd())
	rootCmd.AddCommand(ConfigCmd())

	return rootCmd
}

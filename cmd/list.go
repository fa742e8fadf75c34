package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barisgit/snippets/snippets"
)

func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documented components and snippet keys",
		Long:  "Display every registered component together with the keys each one provides",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().Bool("keys", false, "Also list the snippet keys with their languages")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	reg := snippets.Default()

	fmt.Fprintln(out, "📦 Components:")
	for _, c := range reg.All() {
		fmt.Fprintf(out, "  • %s (%s) - %s\n", c.ID, c.Path(), c.Title)
	}

	if showKeys, _ := cmd.Flags().GetBool("keys"); showKeys {
		fmt.Fprintln(out, "\n🔑 Snippet keys:")
		for _, k := range snippets.Keys() {
			fmt.Fprintf(out, "  • %-14s %-5s %s\n", k, k.Language(), k.Title())
		}
	}

	return nil
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/barisgit/snippets/internal/render"
	"github.com/barisgit/snippets/snippets"
)

func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <component> [key]",
		Short: "Print a component's snippets",
		Long: `Print one snippet of a component, or the whole component as Markdown when
no key is given. Use --interactive to pick the key from a list.`,
		Example: `  snippets show AnimatedContent installation
  snippets show AnimatedContent tsTailwind > AnimatedContent.tsx
  snippets show AnimatedContent -i`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runShow,
	}

	cmd.Flags().BoolP("interactive", "i", false, "Choose the snippet key interactively")
	cmd.Flags().Bool("plain", false, "Print Markdown source even on a terminal")
	cmd.Flags().String("style", "auto", "Terminal style: auto, dark, light, notty or a style file")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	component, err := snippets.Default().Get(args[0])
	if err != nil {
		return err
	}

	keyName := ""
	if len(args) > 1 {
		keyName = args[1]
	} else if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		prompt := &survey.Select{
			Message: "Choose snippet:",
			Options: snippets.KeyNames(),
			Default: snippets.Usage.String(),
			Description: func(value string, index int) string {
				return snippets.Keys()[index].Title()
			},
		}
		if err := survey.AskOne(prompt, &keyName); err != nil {
			return err
		}
	}

	if keyName == "" {
		doc := render.Markdown(component)
		if plain, _ := cmd.Flags().GetBool("plain"); !plain && isTerminal(out) {
			style, _ := cmd.Flags().GetString("style")
			doc = render.Terminal(doc, style, 0)
		}
		fmt.Fprint(out, doc)
		return nil
	}

	text, err := component.Entry.Lookup(keyName)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, text)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

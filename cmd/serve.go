package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/barisgit/snippets/config"
	"github.com/barisgit/snippets/internal/server"
	"github.com/barisgit/snippets/snippets"
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the snippet API and documentation pages",
		Long:  "Start an HTTP server exposing the JSON API, raw snippet downloads and rendered documentation",
		RunE:  runServe,
	}

	cmd.Flags().String("host", "", "Override the configured host")
	cmd.Flags().IntP("port", "p", 0, "Override the configured port")
	cmd.Flags().String("router", "", "Override the configured router ("+strings.Join(config.ValidRouters, ", ")+")")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	if router, _ := cmd.Flags().GetString("router"); router != "" {
		cfg.Server.Router = router
	}
	if errs := config.Validate(cfg); errs.HasErrors() {
		return errs
	}

	srv, err := server.New(cfg.Server, snippets.Default(), version(cmd))
	if err != nil {
		return err
	}

	base := "http://" + cfg.Server.Address()
	fmt.Printf("🚀 Serving %d component(s) with %s\n", snippets.Default().Len(), cfg.Server.Router)
	fmt.Printf("   API:      %s%s\n", base, cfg.Server.APIPrefix)
	fmt.Printf("   Snippets: %s%s\n", base, cfg.Server.SnippetPrefix)
	fmt.Printf("   Docs:     %s%s\n", base, cfg.Server.DocsPrefix)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return err
	}

	fmt.Println("✅ Server stopped")
	return nil
}

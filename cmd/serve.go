package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aocctl/internal/mcpserver"
)

var (
	serveTransport string
	serveAddr      string
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the puzzle console as MCP tools",
		Long: `Starts an MCP server offering the tools list_pages, get_page and solve,
so that AI assistants can browse the days and solve puzzle input.

By default the server speaks MCP over stdio, which is what editors such as
Cursor expect when they launch a server themselves. Use --transport sse to
serve over HTTP instead.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().StringVar(&serveTransport, "transport", mcpserver.TransportStdio, "Transport to serve on (stdio or sse)")
	cmd.Flags().StringVar(&serveAddr, "addr", "localhost:8090", "Listen address for the sse transport")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	application, err := loadServices()
	if err != nil {
		return err
	}
	services := application.Services()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := mcpserver.New(services.Catalog, services.Engine, rootCmd.Version)
	return srv.Serve(ctx, serveTransport, serveAddr)
}

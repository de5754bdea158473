package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/rentaldeploy/app/services"
	"github.com/shashiranjanraj/rentaldeploy/internal/server"
	"github.com/shashiranjanraj/rentaldeploy/pkg/logger"
)

var serveAddr, serveGRPCAddr string

// rentaldeploy serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve readiness over HTTP (and gRPC health when GRPC_ADDR is set)",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := boot(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		ctx := cmd.Context()
		cfg := e.settings.Server
		if cmd.Flags().Changed("addr") {
			cfg.Addr = serveAddr
		}
		if cmd.Flags().Changed("grpc-addr") {
			cfg.GRPCAddr = serveGRPCAddr
		}

		disk, err := e.disk(ctx, "")
		if err != nil {
			logger.WithCtx(ctx).Warn("serve: storage unavailable, /reports disabled", "error", err)
			disk = nil
		}

		srv := server.New(services.NewStatusService(e.db), disk)
		e.out.Info("Status server on %s", cfg.Addr)
		if cfg.GRPCAddr != "" {
			e.out.Info("gRPC health on %s", cfg.GRPCAddr)
		}
		return server.Run(ctx, cfg, srv)
	},
}

// rentaldeploy route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List the status server's routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := server.New(services.NewStatusService(nil), nil)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, r := range srv.Routes() {
			fmt.Fprintf(w, "GET\t%s\t%s\n", r.Path, r.Name)
		}
		return w.Flush()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "HTTP listen address (default SERVER_ADDR)")
	serveCmd.Flags().StringVar(&serveGRPCAddr, "grpc-addr", "", "gRPC listen address (default GRPC_ADDR)")
}

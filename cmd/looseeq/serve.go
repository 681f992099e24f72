package main

import (
	"github.com/spf13/cobra"

	"looseeq/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer one value per line over TCP (telnet or nc)",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Server.Listen
		if cmd.Flags().Changed("listen") {
			addr = serveAddr
		}
		srv := server.NewServer(server.Options{
			Addr:        addr,
			IdleTimeout: cfg.Server.IdleTimeout,
			Verify:      cfg.Display.Verify,
			Logger:      logger,
		})
		return srv.ListenAndServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "listen", "l", "", "Listen address (default from config)")
}

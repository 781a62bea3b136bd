package main

import (
	"taskboard/internal/config"
	"taskboard/internal/server"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API.

Settings come from the environment or a .env file; flags override them.

Examples:
  taskboard serve
  taskboard serve --port 9000 --reset-corrupt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("port") {
				cfg.ServerPort, _ = cmd.Flags().GetString("port")
			}
			if cmd.Flags().Changed("reset-corrupt") {
				cfg.ResetCorruptState, _ = cmd.Flags().GetBool("reset-corrupt")
			}

			srv, err := server.Init(cfg)
			if err != nil {
				return err
			}
			return srv.Run()
		},
	}

	cmd.Flags().StringP("port", "p", "8080", "port to listen on")
	cmd.Flags().Bool("reset-corrupt", false, "start with an empty task list if the stored one cannot be decoded")

	return cmd
}
